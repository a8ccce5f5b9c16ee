package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/community/api/model"
)

func TestListAnnouncementsForAudience(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "title", "content", "type", "target_type", "is_published"}

	t.Run("MatchesTargetsInQuery", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "announcements" WHERE is_published = \$1 AND \("target_type" = \$2 OR \(target_type = \$3 AND EXISTS \(SELECT 1 FROM jsonb_array_elements_text\(target_ids\) AS t\(id\) WHERE t.id::bigint IN \(\$4\)\)\) OR \(target_type = \$5 AND EXISTS \(.* IN \(\$6,\$7\)\)\)\) ORDER BY created_at DESC,id DESC LIMIT`).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(3, "Water outage", "Tomorrow 9-12", "normal", "building", true))

		announcements, err := NewAnnouncementDAO(db).ListAnnouncements(ctx, &model.Audience{
			BuildingIDs: []uint{7},
			HouseIDs:    []uint{101, 102},
		}, 10, 0)
		require.NoError(t, err)
		require.Len(t, announcements, 1)
		assert.Equal(t, uint(3), announcements[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoBoundHouses", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "announcements" WHERE is_published = \$1 AND "target_type" = \$2 ORDER BY`).
			WithArgs(true, "all").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := NewAnnouncementDAO(db).ListAnnouncements(ctx, &model.Audience{}, 0, 0)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Staff", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "announcements" ORDER BY created_at DESC,id DESC$`).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := NewAnnouncementDAO(db).ListAnnouncements(ctx, nil, 0, 0)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
