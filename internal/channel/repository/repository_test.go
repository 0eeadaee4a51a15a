package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"kurz/internal/channel"
	model "kurz/internal/channel/model"
	userModels "kurz/internal/user/model"
	"kurz/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("kurz"),
		postgres.WithUsername("kurz"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	_, err = testDB.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`)
	if err != nil {
		log.Fatalf("failed to create extension: %v", err)
	}

	tables := []any{
		(*userModels.User)(nil),
		(*model.Channel)(nil),
		(*model.Message)(nil),
		(*model.File)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	for _, table := range []string{"messages", "files", "channels", "users"} {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE `+table+` RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	}
}

func seedChannel(t *testing.T, repo *ChannelRepository, participants ...string) *model.Channel {
	t.Helper()
	ch := &model.Channel{
		Creator:      participants[0],
		Target:       participants[1],
		Participants: participants,
		Name:         "test channel",
	}
	require.NoError(t, repo.Create(context.Background(), ch))
	return ch
}

func seedMessages(t *testing.T, repo *MessageRepository, channelID int64, bodies []string, at time.Time) []model.Message {
	t.Helper()
	msgs := make([]model.Message, 0, len(bodies))
	for i, body := range bodies {
		msg := &model.Message{
			ChannelID: channelID,
			Email:     "alice@example.com",
			Nickname:  "alice",
			Body:      body,
			Type:      model.MessageNormal,
			SentAt:    at.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Append(context.Background(), msg))
		msgs = append(msgs, *msg)
	}
	return msgs
}

func Test_ChannelCRUD(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewChannelRepository(testDB, &logger.Logger{})

	ch := seedChannel(t, repo, "alice@example.com", "bob@example.com")
	require.NotZero(t, ch.ID)

	exists, err := repo.Exists(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	fetched, err := repo.GetRaw(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.Equal(t, ch.Participants, fetched.Participants)
	assert.False(t, fetched.Multichat)

	require.NoError(t, repo.Delete(context.Background(), ch.ID))
	_, err = repo.GetRaw(context.Background(), ch.ID)
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func Test_AddParticipant(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewChannelRepository(testDB, &logger.Logger{})

	ch := seedChannel(t, repo, "alice@example.com", "bob@example.com")

	added, err := repo.AddParticipant(context.Background(), ch.ID, channel.ParticipantAdd{
		Invitee:       "carol@example.com",
		Name:          "bob and 2 more",
		SetGroupImage: true,
	})
	require.NoError(t, err)
	assert.True(t, added)

	fetched, err := repo.GetRaw(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Multichat)
	assert.Equal(t, "bob and 2 more", fetched.Name)
	assert.Equal(t, "group", fetched.Image)
	assert.Len(t, fetched.Participants, 3)

	// the same invitee a second time is a no-op, reported as false
	added, err = repo.AddParticipant(context.Background(), ch.ID, channel.ParticipantAdd{
		Invitee: "carol@example.com",
		Name:    "bob and 3 more",
	})
	require.NoError(t, err)
	assert.False(t, added)

	fetched, err = repo.GetRaw(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Participants, 3)
	assert.Equal(t, "bob and 2 more", fetched.Name)
}

func Test_RemoveParticipant(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewChannelRepository(testDB, &logger.Logger{})

	ch := seedChannel(t, repo, "alice@example.com", "bob@example.com", "carol@example.com")

	newName := "bob and 1 more."
	removed, err := repo.RemoveParticipant(context.Background(), ch.ID, "carol@example.com", &newName)
	require.NoError(t, err)
	assert.True(t, removed)

	fetched, err := repo.GetRaw(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, fetched.Participants)
	assert.Equal(t, newName, fetched.Name)

	removed, err = repo.RemoveParticipant(context.Background(), ch.ID, "carol@example.com", nil)
	require.NoError(t, err)
	assert.False(t, removed)
}

func Test_SetNameMarksManual(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewChannelRepository(testDB, &logger.Logger{})

	ch := seedChannel(t, repo, "alice@example.com", "bob@example.com")

	require.NoError(t, repo.SetName(context.Background(), ch.ID, "weekend plans"))

	fetched, err := repo.GetRaw(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "weekend plans", fetched.Name)
	assert.True(t, fetched.NameUpdated)

	err = repo.SetName(context.Background(), ch.ID+999, "nope")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func Test_UpdateLastMessage(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewChannelRepository(testDB, &logger.Logger{})

	ch := seedChannel(t, repo, "alice@example.com", "bob@example.com")

	sentAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.UpdateLastMessage(context.Background(), ch.ID, channel.LastMessage{
		MessageID: 12,
		Email:     "alice@example.com",
		Nickname:  "alice",
		Body:      "latest",
		SentAt:    sentAt,
	}))

	fetched, err := repo.GetRaw(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), fetched.LastMessageID)
	assert.Equal(t, "latest", fetched.LastMessageBody)
}

func Test_ListForUser(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewChannelRepository(testDB, &logger.Logger{})

	alice := &userModels.User{Email: "alice@example.com", Nickname: "alice", Password: "x", Image: "default"}
	bob := &userModels.User{Email: "bob@example.com", Nickname: "bob", Password: "x", Image: "default"}
	_, err := testDB.NewInsert().Model(alice).Exec(context.Background())
	require.NoError(t, err)
	_, err = testDB.NewInsert().Model(bob).Exec(context.Background())
	require.NoError(t, err)

	seedChannel(t, repo, "alice@example.com", "bob@example.com")
	seedChannel(t, repo, "bob@example.com", "alice@example.com")

	views, err := repo.ListForUser(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, view := range views {
		assert.NotEmpty(t, view.Creator.Nickname)
		assert.NotEmpty(t, view.Target.Nickname)
	}

	views, err = repo.ListForUser(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func Test_MessagePagination(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	chRepo := NewChannelRepository(testDB, &logger.Logger{})
	msgRepo := NewMessageRepository(testDB, &logger.Logger{})

	ch := seedChannel(t, chRepo, "alice@example.com", "bob@example.com")
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	seeded := seedMessages(t, msgRepo, ch.ID,
		[]string{"m1", "m2", "m3", "m4", "m5", "m6", "m7"}, base)

	t.Run("latest returns newest first, limited", func(t *testing.T) {
		page, err := msgRepo.Latest(context.Background(), ch.ID, 3)
		require.NoError(t, err)
		require.Len(t, page, 3)
		assert.Equal(t, "m7", page[0].Body)
		assert.Equal(t, "m6", page[1].Body)
		assert.Equal(t, "m5", page[2].Body)
	})

	t.Run("cursor walk covers history without re-returning", func(t *testing.T) {
		seen := map[int64]bool{}
		cursor := seeded[len(seeded)-1] // newest

		// walking from the newest message visits every older message
		// exactly once and terminates
		for {
			page, err := msgRepo.Before(context.Background(), ch.ID, cursor.SentAt, 3)
			require.NoError(t, err)
			if len(page) == 0 {
				break
			}
			for _, msg := range page {
				assert.False(t, seen[msg.ID], "message %d returned twice", msg.ID)
				seen[msg.ID] = true
			}
			cursor = page[len(page)-1] // oldest of the page
		}
		assert.Len(t, seen, len(seeded)-1)
	})

	t.Run("identical timestamps fall back to insertion order", func(t *testing.T) {
		burst := time.Now().UTC().Truncate(time.Millisecond)
		for _, body := range []string{"b1", "b2", "b3"} {
			msg := &model.Message{
				ChannelID: ch.ID,
				Email:     "alice@example.com",
				Nickname:  "alice",
				Body:      body,
				Type:      model.MessageSystem,
				SentAt:    burst,
			}
			require.NoError(t, msgRepo.Append(context.Background(), msg))
		}

		page, err := msgRepo.Latest(context.Background(), ch.ID, 3)
		require.NoError(t, err)
		require.Len(t, page, 3)
		// newest-first means the last insert comes back first
		assert.Equal(t, "b3", page[0].Body)
		assert.Equal(t, "b2", page[1].Body)
		assert.Equal(t, "b1", page[2].Body)
	})

	t.Run("cursor in empty range terminates immediately", func(t *testing.T) {
		page, err := msgRepo.Before(context.Background(), ch.ID, base, 10)
		require.NoError(t, err)
		assert.Empty(t, page)
	})
}

func Test_MessageGetByID(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	chRepo := NewChannelRepository(testDB, &logger.Logger{})
	msgRepo := NewMessageRepository(testDB, &logger.Logger{})

	ch := seedChannel(t, chRepo, "alice@example.com", "bob@example.com")
	msgs := seedMessages(t, msgRepo, ch.ID, []string{"hello"}, time.Now().UTC())

	got, err := msgRepo.GetByID(context.Background(), ch.ID, msgs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Body)

	// a message id from another channel must not resolve
	_, err = msgRepo.GetByID(context.Background(), ch.ID+1, msgs[0].ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func Test_FileRepository(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	chRepo := NewChannelRepository(testDB, &logger.Logger{})
	fileRepo := NewFileRepository(testDB, &logger.Logger{})

	ch := seedChannel(t, chRepo, "alice@example.com", "bob@example.com")

	f := &model.File{
		ChannelID:    ch.ID,
		Uploader:     "alice@example.com",
		Name:         "stored-abc.pdf",
		OriginalName: "notes.pdf",
		Mime:         "application/pdf",
		Size:         2048,
	}
	require.NoError(t, fileRepo.Save(context.Background(), f))
	require.NotZero(t, f.ID)

	got, err := fileRepo.Get(context.Background(), ch.ID, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", got.OriginalName)
	assert.Equal(t, int64(0), got.Downloaded)

	require.NoError(t, fileRepo.IncrementDownloaded(context.Background(), f.ID))
	got, err = fileRepo.Get(context.Background(), ch.ID, f.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Downloaded)

	_, err = fileRepo.Get(context.Background(), ch.ID+1, f.ID)
	assert.ErrorIs(t, err, ErrFileNotFound)
}
