package message_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/QHOPAQ/chat-api/internal/domain"
	"github.com/QHOPAQ/chat-api/internal/logging"
	"github.com/QHOPAQ/chat-api/internal/repository/chat"
	"github.com/QHOPAQ/chat-api/internal/repository/message"
	"github.com/QHOPAQ/chat-api/internal/testutils"
)

func newChat(t *testing.T, db *gorm.DB) *domain.Chat {
	t.Helper()
	c := &domain.Chat{Title: "chat"}
	require.NoError(t, db.Create(c).Error)
	return c
}

func texts(messages []domain.Message) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.Text)
	}
	return out
}

func TestMessageRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	repo := message.NewMessageRepository(db, logging.NewNop())
	c := newChat(t, db)

	msg, err := repo.Create(ctx, &domain.Message{ChatID: c.ID, Text: "hello"})
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.Equal(t, c.ID, msg.ChatID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestMessageRepository_CreateForMissingChat(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	repo := message.NewMessageRepository(db, logging.NewNop())

	_, err := repo.Create(ctx, &domain.Message{ChatID: 77, Text: "orphan"})
	assert.ErrorIs(t, err, chat.ErrChatNotFound)

	count, err := repo.CountByChatID(ctx, 77)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMessageRepository_FindLastByChatID(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	repo := message.NewMessageRepository(db, logging.NewNop())
	c := newChat(t, db)
	other := newChat(t, db)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third", "fourth"} {
		_, err := repo.Create(ctx, &domain.Message{ChatID: c.ID, Text: text, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.Message{ChatID: other.ID, Text: "elsewhere", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)

	tests := []struct {
		limit int
		want  []string
	}{
		{1, []string{"fourth"}},
		{2, []string{"third", "fourth"}},
		{4, []string{"first", "second", "third", "fourth"}},
		{100, []string{"first", "second", "third", "fourth"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%d", tt.limit), func(t *testing.T) {
			got, err := repo.FindLastByChatID(ctx, c.ID, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestMessageRepository_FindLastBreaksTimestampTiesByID(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	repo := message.NewMessageRepository(db, logging.NewNop())
	c := newChat(t, db)

	same := time.Date(2026, 2, 4, 9, 30, 0, 0, time.UTC)
	for _, text := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, &domain.Message{ChatID: c.ID, Text: text, CreatedAt: same})
		require.NoError(t, err)
	}

	got, err := repo.FindLastByChatID(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, texts(got))
	assert.Less(t, got[0].ID, got[1].ID)
}

func TestMessageRepository_FindLastEmptyChat(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := message.NewMessageRepository(db, logging.NewNop())
	c := newChat(t, db)

	got, err := repo.FindLastByChatID(context.Background(), c.ID, 20)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMessageRepository_FindLastRejectsBadLimit(t *testing.T) {
	repo := message.NewMessageRepository(testutils.NewTestDB(t), logging.NewNop())

	_, err := repo.FindLastByChatID(context.Background(), 1, 0)
	assert.ErrorIs(t, err, message.ErrInvalidLimit)
}
