package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/modio-client/pkg/modio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModsClient_Get(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7", request.URL.Path)

		_, _ = writer.Write([]byte(`{"id":7,"game_id":51,"name":"Graphics Overhaul"}`))
	}, nil)

	mod, err := apiClient.Mods().Get(context.Background(), 51, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), mod.ID)
	assert.Equal(t, "Graphics Overhaul", mod.Name)
}

func TestModsClient_List(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods", request.URL.Path)
		assert.Equal(t, "-date_added", request.URL.Query().Get("_sort"))

		_, _ = writer.Write([]byte(`{"data":[{"id":7},{"id":8}],"result_count":2,"result_total":2}`))
	}, nil)

	mods, err := apiClient.Mods().List(context.Background(), 51, modio.NewFilter().Sort("date", true))
	require.NoError(t, err)
	assert.Len(t, mods.Data, 2)
}

func TestModsClient_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("returns the subscribed mod", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/games/51/mods/7/subscribe", request.URL.Path)
			assert.Equal(t, http.MethodPost, request.Method)

			_, _ = writer.Write([]byte(`{"id":7,"game_id":51}`))
		}, nil)

		mod, err := apiClient.Mods().Subscribe(context.Background(), 51, 7)
		require.NoError(t, err)
		require.NotNil(t, mod)
		assert.Equal(t, int64(7), mod.ID)
	})

	t.Run("absorbs an already-subscribed rejection", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"code":15004,"message":"You are already subscribed."}}`))
		}, nil)

		mod, err := apiClient.Mods().Subscribe(context.Background(), 51, 7)
		require.NoError(t, err)
		assert.Nil(t, mod)
	})

	t.Run("other failures surface", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"code":14001,"message":"Mod not found."}}`))
		}, nil)

		_, err := apiClient.Mods().Subscribe(context.Background(), 51, 9999)
		require.Error(t, err)
		assert.True(t, modio.IsNotFound(err))
	})
}

func TestModsClient_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("issues a delete", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/games/51/mods/7/subscribe", request.URL.Path)
			assert.Equal(t, http.MethodDelete, request.Method)

			writer.WriteHeader(http.StatusNoContent)
		}, nil)

		require.NoError(t, apiClient.Mods().Unsubscribe(context.Background(), 51, 7))
	})

	t.Run("absorbs a not-subscribed rejection", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"code":15005,"message":"You are not subscribed."}}`))
		}, nil)

		require.NoError(t, apiClient.Mods().Unsubscribe(context.Background(), 51, 7))
	})
}

func TestModsClient_Tags(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7/tags", request.URL.Path)

		switch request.Method {
		case http.MethodGet:
			_, _ = writer.Write([]byte(`{"data":[{"name":"graphics"}],"result_count":1,"result_total":1}`))
		case http.MethodPost, http.MethodDelete:
			require.NoError(t, request.ParseForm())
			assert.Equal(t, "graphics", request.PostForm.Get("tags[0]"))
			assert.Equal(t, "hd", request.PostForm.Get("tags[1]"))

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"code":201,"message":"ok"}`))
		}
	}, nil)

	ctx := context.Background()

	tags, err := apiClient.Mods().GetTags(ctx, 51, 7, nil)
	require.NoError(t, err)
	require.Len(t, tags.Data, 1)
	assert.Equal(t, "graphics", tags.Data[0].Name)

	require.NoError(t, apiClient.Mods().AddTags(ctx, 51, 7, []string{"graphics", "hd"}))
	require.NoError(t, apiClient.Mods().DeleteTags(ctx, 51, 7, []string{"graphics", "hd"}))
}

func TestModsClient_Metadata(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7/metadatakvp", request.URL.Path)

		switch request.Method {
		case http.MethodGet:
			_, _ = writer.Write([]byte(`{"data":[{"metakey":"pistol-dmg","metavalue":"800"}],"result_count":1,"result_total":1}`))
		case http.MethodPost:
			require.NoError(t, request.ParseForm())
			assert.Equal(t, "pistol-dmg:800:400", request.PostForm.Get("metadata[0]"))

			_, _ = writer.Write([]byte(`{"code":201,"message":"ok"}`))
		case http.MethodDelete:
			writer.WriteHeader(http.StatusNoContent)
		}
	}, nil)

	ctx := context.Background()

	kvps, err := apiClient.Mods().GetMetadata(ctx, 51, 7, nil)
	require.NoError(t, err)
	require.Len(t, kvps.Data, 1)
	assert.Equal(t, "pistol-dmg", kvps.Data[0].Metakey)

	err = apiClient.Mods().AddMetadata(ctx, 51, 7, map[string][]string{"pistol-dmg": {"800", "400"}})
	require.NoError(t, err)

	err = apiClient.Mods().DeleteMetadata(ctx, 51, 7, map[string][]string{"pistol-dmg": {"800", "400"}})
	require.NoError(t, err)
}

func TestModsClient_Dependencies(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7/dependencies", request.URL.Path)

		switch request.Method {
		case http.MethodGet:
			_, _ = writer.Write([]byte(`{"data":[{"mod_id":12}],"result_count":1,"result_total":1}`))
		case http.MethodPost, http.MethodDelete:
			require.NoError(t, request.ParseForm())
			assert.Equal(t, "12", request.PostForm.Get("dependencies[0]"))
			assert.Equal(t, "13", request.PostForm.Get("dependencies[1]"))

			_, _ = writer.Write([]byte(`{"code":201,"message":"ok"}`))
		}
	}, nil)

	ctx := context.Background()

	deps, err := apiClient.Mods().GetDependencies(ctx, 51, 7, nil)
	require.NoError(t, err)
	require.Len(t, deps.Data, 1)
	assert.Equal(t, int64(12), deps.Data[0].ModID)

	require.NoError(t, apiClient.Mods().AddDependencies(ctx, 51, 7, []int64{12, 13}))
	require.NoError(t, apiClient.Mods().DeleteDependencies(ctx, 51, 7, []int64{12, 13}))
}

func TestModsClient_AddRating(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7/ratings", request.URL.Path)

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "-1", request.PostForm.Get("rating"))

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"code":201,"message":"ok"}`))
	}, nil)

	err := apiClient.Mods().AddRating(context.Background(), 51, 7, modio.RatingNegative)
	require.NoError(t, err)
}

func TestModsClient_Team(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/games/51/mods/7/team", request.URL.Path)

		switch request.Method {
		case http.MethodGet:
			_, _ = writer.Write([]byte(`{"data":[{"id":1,"level":8,"user":{"username":"lead"}}],"result_count":1,"result_total":1}`))
		case http.MethodPost:
			require.NoError(t, request.ParseForm())
			assert.Equal(t, "artist@example.com", request.PostForm.Get("email"))
			assert.Equal(t, "4", request.PostForm.Get("level"))

			_, _ = writer.Write([]byte(`{"code":201,"message":"ok"}`))
		}
	}, nil)

	ctx := context.Background()

	team, err := apiClient.Mods().GetTeam(ctx, 51, 7, nil)
	require.NoError(t, err)
	require.Len(t, team.Data, 1)
	assert.Equal(t, modio.LevelAdmin, team.Data[0].Level)

	err = apiClient.Mods().AddTeamMember(ctx, 51, 7, &modio.TeamMemberAddRequest{
		Email: "artist@example.com",
		Level: modio.LevelCreator,
	})
	require.NoError(t, err)
}

func TestModsClient_Report(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/report", request.URL.Path)

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "mods", request.PostForm.Get("resource"))
		assert.Equal(t, "7", request.PostForm.Get("id"))
		assert.Equal(t, "1", request.PostForm.Get("type"))

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"code":201,"message":"ok"}`))
	}, nil)

	err := apiClient.Mods().Report(context.Background(), 7, true, "takedown", "copied assets")
	require.NoError(t, err)
}
