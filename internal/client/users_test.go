package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/31", request.URL.Path)

		_, _ = writer.Write([]byte(`{"id":31,"username":"modder","name_id":"modder"}`))
	}, nil)

	user, err := apiClient.Users().Get(context.Background(), 31)
	require.NoError(t, err)
	assert.Equal(t, "modder", user.Username)
}

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users", request.URL.Path)

		_, _ = writer.Write([]byte(`{"data":[{"id":31}],"result_count":1,"result_total":1}`))
	}, nil)

	users, err := apiClient.Users().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, users.Data, 1)
}

func TestUsersClient_MuteUnmute(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/31/mute", request.URL.Path)

		switch request.Method {
		case http.MethodPost:
			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"code":201,"message":"ok"}`))
		case http.MethodDelete:
			writer.WriteHeader(http.StatusNoContent)
		}
	}, nil)

	ctx := context.Background()
	require.NoError(t, apiClient.Users().Mute(ctx, 31))
	require.NoError(t, apiClient.Users().Unmute(ctx, 31))
}

func TestUsersClient_Report(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/report", request.URL.Path)

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "users", request.PostForm.Get("resource"))
		assert.Equal(t, "31", request.PostForm.Get("id"))
		assert.Equal(t, "0", request.PostForm.Get("type"))

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"code":201,"message":"ok"}`))
	}, nil)

	err := apiClient.Users().Report(context.Background(), 31, false, "abuse", "impersonation")
	require.NoError(t, err)
}
