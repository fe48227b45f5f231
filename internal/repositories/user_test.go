package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'USER',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS patients (
		id BIGSERIAL PRIMARY KEY,
		age INT NOT NULL,
		gender VARCHAR(20) NOT NULL,
		bmi DOUBLE PRECISION NOT NULL,
		systolic_bp INT NOT NULL,
		diastolic_bp INT NOT NULL,
		heart_rate INT NOT NULL,
		smoker BOOLEAN NOT NULL,
		diabetic_family_history BOOLEAN NOT NULL
	);

	CREATE TABLE IF NOT EXISTS prediction_history (
		id BIGSERIAL PRIMARY KEY,
		age INT NOT NULL,
		bmi DOUBLE PRECISION NOT NULL,
		heart_rate INT NOT NULL,
		smoker BOOLEAN NOT NULL,
		family_history BOOLEAN NOT NULL,
		risk_score DOUBLE PRECISION NOT NULL,
		risk_level VARCHAR(20) NOT NULL,
		username VARCHAR(50) NOT NULL,
		predicted_at TIMESTAMP NOT NULL
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, "alice", "hash123", "USER")
	assert.NoError(t, err)

	var user struct {
		Username     string `db:"username"`
		PasswordHash string `db:"password_hash"`
		Role         string `db:"role"`
	}
	err = db.Get(&user, "SELECT username, password_hash, role FROM users WHERE username=$1", "alice")
	assert.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.Equal(t, "USER", user.Role)
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, "alice", "hash1", "USER"))
	assert.Error(t, repo.Save(ctx, "alice", "hash2", "USER"))

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE username=$1", "alice"))
	assert.Equal(t, 1, count)
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, "bob", "hash456", "USER"))

	user, err := readRepo.GetByUsername(ctx, "bob")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "hash456", user.PasswordHash)
	assert.Equal(t, "USER", user.Role)
	assert.NotZero(t, user.ID)

	// Unknown username yields nil without error
	missing, err := readRepo.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
