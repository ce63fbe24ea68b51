package gateway

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contents/", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("course"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "course": 3, "title": "Week 1", "content_type": "video"}]`))
	})

	list, err := client.Contents("tok", 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Week 1", list[0].Title)
}

func TestCreateContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contents/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "3", r.FormValue("course"))
		assert.Equal(t, "Week 1", r.FormValue("title"))
		assert.Equal(t, "video", r.FormValue("content_type"))
		assert.Equal(t, "0", r.FormValue("order"))
		assert.Equal(t, "true", r.FormValue("is_active"))

		file, header, err := r.FormFile("content_file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "lec1.mp4", header.Filename)

		w.WriteHeader(http.StatusCreated)
	})

	form := ContentForm{Course: 3, Title: "Week 1", ContentType: "video", IsActive: true}
	err := client.CreateContent("tok", form, fileHeader(t, "content_file", "lec1.mp4", "mp4-bytes"))
	require.NoError(t, err)
}

func TestUpdateContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/contents/9/", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Week 1 (revised)", payload["title"])
		assert.Equal(t, float64(2), payload["order"])
		assert.Equal(t, false, payload["is_active"])

		w.WriteHeader(http.StatusOK)
	})

	form := ContentForm{Course: 3, Title: "Week 1 (revised)", ContentType: "video", Order: 2}
	require.NoError(t, client.UpdateContent("tok", 9, form))
}

func TestDeleteContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/contents/9/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteContent("tok", 9))
}

func TestUploadFailureSurfacesDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Unsupported file type"}`))
	})

	form := ContentForm{Course: 3, Title: "Week 1", ContentType: "video"}
	err := client.CreateContent("tok", form, fileHeader(t, "content_file", "a.bin", "x"))
	require.Error(t, err)
	assert.EqualError(t, err, "Unsupported file type")
}
