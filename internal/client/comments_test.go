package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/modio-client/pkg/modio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsClient_Edit(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7/comments/101", request.URL.Path)
		assert.Equal(t, http.MethodPut, request.Method)

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "updated text", request.PostForm.Get("content"))

		_, _ = writer.Write([]byte(`{"id":101,"content":"updated text"}`))
	}, nil)

	comment, err := apiClient.Comments().Edit(context.Background(), 51, 7, 101, "updated text")
	require.NoError(t, err)
	assert.Equal(t, "updated text", comment.Content)
}

func TestCommentsClient_Delete(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7/comments/101", request.URL.Path)
		assert.Equal(t, http.MethodDelete, request.Method)

		writer.WriteHeader(http.StatusNoContent)
	}, nil)

	require.NoError(t, apiClient.Comments().Delete(context.Background(), 51, 7, 101))
}

func TestCommentsClient_AddKarma(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7/comments/101/karma", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "1", request.PostForm.Get("karma"))

		_, _ = writer.Write([]byte(`{"id":101,"karma":5}`))
	}, nil)

	comment, err := apiClient.Comments().AddKarma(context.Background(), 51, 7, 101, modio.RatingPositive)
	require.NoError(t, err)
	assert.Equal(t, 5, comment.Karma)
}
