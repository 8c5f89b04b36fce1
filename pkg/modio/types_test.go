package modio_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/modio-client/pkg/modio"
	"github.com/stretchr/testify/assert"
)

func TestList_Pagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		list    modio.ModList
		page    int
		isFirst bool
		isLast  bool
	}{
		{
			name:    "empty list",
			list:    modio.ModList{},
			page:    0,
			isFirst: true,
			isLast:  true,
		},
		{
			name: "first of three pages",
			list: modio.ModList{
				ResultCount:  20,
				ResultLimit:  20,
				ResultOffset: 0,
				ResultTotal:  50,
			},
			page:    0,
			isFirst: true,
			isLast:  false,
		},
		{
			name: "middle page",
			list: modio.ModList{
				ResultCount:  20,
				ResultLimit:  20,
				ResultOffset: 20,
				ResultTotal:  50,
			},
			page:    1,
			isFirst: false,
			isLast:  false,
		},
		{
			name: "short last page",
			list: modio.ModList{
				ResultCount:  10,
				ResultLimit:  20,
				ResultOffset: 40,
				ResultTotal:  50,
			},
			page:    2,
			isFirst: false,
			isLast:  true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.page, testCase.list.Page())
			assert.Equal(t, testCase.isFirst, testCase.list.IsFirst())
			assert.Equal(t, testCase.isLast, testCase.list.IsLast())
		})
	}
}

func TestMod_KVP(t *testing.T) {
	t.Parallel()

	mod := &modio.Mod{
		MetadataKVP: []modio.MetadataKVP{
			{Metakey: "pistol-dmg", Metavalue: "800"},
			{Metakey: "pistol-dmg", Metavalue: "400"},
			{Metakey: "difficulty", Metavalue: "hard"},
		},
	}

	grouped := mod.KVP()
	assert.Equal(t, []string{"800", "400"}, grouped["pistol-dmg"])
	assert.Equal(t, []string{"hard"}, grouped["difficulty"])
	assert.Len(t, grouped, 2)
}

func TestDownload_Expired(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)

	fresh := &modio.Download{DateExpires: now.Unix() + 3600}
	assert.False(t, fresh.Expired(now))

	stale := &modio.Download{DateExpires: now.Unix() - 1}
	assert.True(t, stale.Expired(now))

	boundary := &modio.Download{DateExpires: now.Unix()}
	assert.True(t, boundary.Expired(now))
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "moderator", modio.LevelModerator.String())
	assert.Equal(t, "creator", modio.LevelCreator.String())
	assert.Equal(t, "admin", modio.LevelAdmin.String())
	assert.Equal(t, "unknown", modio.Level(2).String())
}

func TestRatingValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "positive", modio.RatingPositive.String())
	assert.Equal(t, "negative", modio.RatingNegative.String())
	assert.Equal(t, "neutral", modio.RatingNeutral.String())
}
