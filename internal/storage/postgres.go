package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	storage := &PostgresStorage{db: db}

	// Initialize database schema
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	_, err = s.db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStorage) AppendTurn(ctx context.Context, turn *models.ConversationTurn) error {
	query := `
		INSERT INTO conversation_turns (id, owner_id, sender, content, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		turn.ID,
		turn.OwnerID,
		string(turn.Sender),
		turn.Content,
		turn.SessionID,
		turn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error appending turn: %v", err)
	}

	return nil
}

func (s *PostgresStorage) QueryTurns(ctx context.Context, ownerID, sessionID string) ([]*models.ConversationTurn, error) {
	query := `
		SELECT id, owner_id, sender, content, session_id, created_at
		FROM conversation_turns
		WHERE owner_id = $1 AND ($2 = '' OR session_id = $2)
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error querying turns: %v", err)
	}
	defer rows.Close()

	var turns []*models.ConversationTurn
	for rows.Next() {
		turn := &models.ConversationTurn{}
		var sender string
		err := rows.Scan(
			&turn.ID,
			&turn.OwnerID,
			&sender,
			&turn.Content,
			&turn.SessionID,
			&turn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning turn: %v", err)
		}
		turn.Sender = models.Sender(sender)
		turns = append(turns, turn)
	}

	return turns, rows.Err()
}

func (s *PostgresStorage) DeleteTurns(ctx context.Context, ownerID string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM conversation_turns WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("error deleting turns: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %v", err)
	}

	return deleted, nil
}

func (s *PostgresStorage) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	query := `
		INSERT INTO reminders (id, owner_id, title, remind_at, done, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		reminder.ID,
		reminder.OwnerID,
		reminder.Title,
		reminder.Time,
		reminder.Done,
		reminder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating reminder: %v", err)
	}

	return nil
}

func (s *PostgresStorage) GetReminders(ctx context.Context, ownerID string) ([]*models.Reminder, error) {
	query := `
		SELECT id, owner_id, title, remind_at, done, created_at
		FROM reminders
		WHERE owner_id = $1
		ORDER BY remind_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying reminders: %v", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

func (s *PostgresStorage) MarkReminderDone(ctx context.Context, ownerID, reminderID string) (*models.Reminder, error) {
	query := `
		UPDATE reminders
		SET done = TRUE
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, remind_at, done, created_at`

	reminder := &models.Reminder{}
	err := s.db.QueryRowContext(ctx, query, reminderID, ownerID).Scan(
		&reminder.ID,
		&reminder.OwnerID,
		&reminder.Title,
		&reminder.Time,
		&reminder.Done,
		&reminder.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error marking reminder done: %v", err)
	}

	return reminder, nil
}

func (s *PostgresStorage) DueReminders(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	query := `
		SELECT id, owner_id, title, remind_at, done, created_at
		FROM reminders
		WHERE NOT done AND remind_at <= $1
		ORDER BY remind_at ASC`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("error querying due reminders: %v", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

func scanReminders(rows *sql.Rows) ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	for rows.Next() {
		reminder := &models.Reminder{}
		err := rows.Scan(
			&reminder.ID,
			&reminder.OwnerID,
			&reminder.Title,
			&reminder.Time,
			&reminder.Done,
			&reminder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning reminder: %v", err)
		}
		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
