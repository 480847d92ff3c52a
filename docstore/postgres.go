package docstore

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"
)

// notifyChannel carries the collection name of every changed row.
const notifyChannel = "document_changes"

// JSONB stores a full document as a jsonb column.
type JSONB Document

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return errors.New("unsupported jsonb source type")
	}
}

// documentRow is the single table all collections share.
type documentRow struct {
	Collection string    `gorm:"primaryKey;size:64"`
	DocID      string    `gorm:"primaryKey;column:doc_id;size:64"`
	Data       JSONB     `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

// PostgresStore is the production backend. CRUD goes through gorm; change
// detection rides on LISTEN/NOTIFY over a dedicated pgx connection, with a
// row trigger announcing the changed collection. Own writes additionally
// publish on the writer's goroutine, so subscribers get at-least-once
// delivery even while the listener connection is down.
type PostgresStore struct {
	db     *gorm.DB
	dsn    string
	hub    *hub
	cancel context.CancelFunc
	done   chan struct{}
}

// OpenPostgres migrates the documents table, installs the notify trigger
// and starts the listener.
func OpenPostgres(db *gorm.DB, dsn string) (*PostgresStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, err
	}
	if err := installNotifyTrigger(db); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &PostgresStore{
		db:     db,
		dsn:    dsn,
		hub:    newHub(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.listen(ctx)
	return s, nil
}

func installNotifyTrigger(db *gorm.DB) error {
	statements := []string{
		`CREATE OR REPLACE FUNCTION notify_document_change() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify('` + notifyChannel + `', COALESCE(NEW.collection, OLD.collection));
			RETURN NULL;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS documents_notify ON documents`,
		`CREATE TRIGGER documents_notify
			AFTER INSERT OR UPDATE OR DELETE ON documents
			FOR EACH ROW EXECUTE FUNCTION notify_document_change()`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.cancel()
	<-s.done
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) GetAll(ctx context.Context, collection string) []Document {
	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		log.Printf("docstore: read %s: %v", collection, err)
		return []Document{}
	}
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, Document(row.Data))
	}
	return docs
}

func (s *PostgresStore) Add(ctx context.Context, collection string, payload Document) (string, error) {
	id := newID()
	now := time.Now().UTC()
	doc := newDocument(payload, id, now.Format(time.RFC3339Nano))
	row := documentRow{
		Collection: collection,
		DocID:      id,
		Data:       JSONB(doc),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	s.publish(ctx, collection)
	return id, nil
}

func (s *PostgresStore) Update(ctx context.Context, collection, id string, patch Document) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row documentRow
		err := tx.Where("collection = ? AND doc_id = ?", collection, id).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		row.Data = JSONB(mergeDocument(Document(row.Data), patch, now.Format(time.RFC3339Nano)))
		row.UpdatedAt = now
		return tx.Save(&row).Error
	})
	if err != nil {
		return err
	}
	s.publish(ctx, collection)
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&documentRow{}).Error
	if err != nil {
		return err
	}
	s.publish(ctx, collection)
	return nil
}

func (s *PostgresStore) Subscribe(collection string, fn func([]Document)) func() {
	unsubscribe := s.hub.subscribe(collection, fn)
	fn(s.GetAll(context.Background(), collection))
	return unsubscribe
}

func (s *PostgresStore) publish(ctx context.Context, collection string) {
	if !s.hub.active(collection) {
		return
	}
	s.hub.publish(collection, s.GetAll(ctx, collection))
}

// listen holds a dedicated connection on the notify channel and turns
// every notification into a snapshot publish. The connection is
// re-established after a drop; this loop is the self-healing the managed
// document-store clients provide out of the box.
func (s *PostgresStore) listen(ctx context.Context) {
	defer close(s.done)
	for {
		if ctx.Err() != nil {
			return
		}
		conn, err := pgx.Connect(ctx, s.dsn)
		if err != nil {
			log.Printf("docstore: listener connect: %v", err)
			if !sleepCtx(ctx, 2*time.Second) {
				return
			}
			continue
		}
		if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
			log.Printf("docstore: listen: %v", err)
			conn.Close(ctx)
			if !sleepCtx(ctx, 2*time.Second) {
				return
			}
			continue
		}
		for {
			notification, err := conn.WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("docstore: listener dropped: %v", err)
				}
				break
			}
			s.publish(ctx, notification.Payload)
		}
		conn.Close(context.Background())
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
