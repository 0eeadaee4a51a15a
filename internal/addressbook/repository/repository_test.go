package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"kurz/internal/addressbook"
	model "kurz/internal/addressbook/model"
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
		(*model.Contact)(nil),
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
	for _, table := range []string{"contacts", "users"} {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE `+table+` RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	}
}

func seedUser(t *testing.T, email, nickname string) {
	t.Helper()
	u := &userModels.User{Email: email, Nickname: nickname, Password: "x", Image: "default"}
	_, err := testDB.NewInsert().Model(u).Exec(context.Background())
	require.NoError(t, err)
}

func seedContact(t *testing.T, repo *ContactRepository, owner, target string) *model.Contact {
	t.Helper()
	c := &model.Contact{OwnerEmail: owner, TargetEmail: target}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func Test_ListWithProfiles(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewContactRepository(testDB, &logger.Logger{})

	seedUser(t, "alice@example.com", "alice")
	seedUser(t, "bob@example.com", "bob")
	seedUser(t, "carol@example.com", "carol")
	seedContact(t, repo, "alice@example.com", "bob@example.com")
	seedContact(t, repo, "alice@example.com", "carol@example.com")
	// bob's book is separate from alice's
	seedContact(t, repo, "bob@example.com", "alice@example.com")

	list, err := repo.ListWithProfiles(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, list, 2)

	byEmail := map[string]addressbook.ContactDTO{}
	for _, c := range list {
		byEmail[c.Email] = c
	}
	assert.Equal(t, "bob", byEmail["bob@example.com"].Nickname)
	assert.Equal(t, "carol", byEmail["carol@example.com"].Nickname)
}

func Test_ChannelLink(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewContactRepository(testDB, &logger.Logger{})

	seedUser(t, "alice@example.com", "alice")
	seedUser(t, "bob@example.com", "bob")
	seedContact(t, repo, "alice@example.com", "bob@example.com")

	// a fresh contact carries no link
	id, err := repo.GetChannelID(context.Background(), "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	// a missing contact row reads the same as an unlinked one
	id, err = repo.GetChannelID(context.Background(), "alice@example.com", "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	require.NoError(t, repo.SetChannelID(context.Background(), "alice@example.com", "bob@example.com", 42))

	id, err = repo.GetChannelID(context.Background(), "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	// linking a nonexistent contact is a hard error, used by the
	// connect rollback path
	err = repo.SetChannelID(context.Background(), "alice@example.com", "nobody@example.com", 42)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func Test_UpdateIsNoOpTolerant(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewContactRepository(testDB, &logger.Logger{})

	seedUser(t, "alice@example.com", "alice")
	seedUser(t, "bob@example.com", "bob")
	seedContact(t, repo, "alice@example.com", "bob@example.com")

	require.NoError(t, repo.SetChannelID(context.Background(), "alice@example.com", "bob@example.com", 7))

	zero := int64(0)
	require.NoError(t, repo.Update(context.Background(), "alice@example.com", "bob@example.com",
		addressbook.ContactPatch{ChannelID: &zero}))

	id, err := repo.GetChannelID(context.Background(), "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	// updating a missing row succeeds silently; invite relies on this
	// when the inviter never added the target as a contact
	require.NoError(t, repo.Update(context.Background(), "alice@example.com", "nobody@example.com",
		addressbook.ContactPatch{ChannelID: &zero}))
}

func Test_DeleteAndExists(t *testing.T) {
	t.Cleanup(func() { truncate(t) })
	repo := NewContactRepository(testDB, &logger.Logger{})

	seedUser(t, "alice@example.com", "alice")
	seedUser(t, "bob@example.com", "bob")
	seedContact(t, repo, "alice@example.com", "bob@example.com")

	exists, err := repo.Exists(context.Background(), "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(context.Background(), "alice@example.com", "bob@example.com"))

	exists, err = repo.Exists(context.Background(), "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
