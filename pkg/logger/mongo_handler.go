// MongoHandler is an slog.Handler that forwards records to stdout via the
// wrapped handler and asynchronously ships them to a MongoDB collection.
//
//   - Records are enqueued into a buffered channel; a full channel drops the
//     record rather than blocking the request path.
//   - A single background goroutine drains the channel and performs
//     InsertMany in batches.
//   - Call Close() on shutdown to flush the queue and disconnect.
package logger

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoQueueSize = 4096
	mongoBatchSize = 50
	mongoDrainTick = 2 * time.Second
)

// logDocument is the shape written to MongoDB.
type logDocument struct {
	Time  time.Time `bson:"time"`
	Level string    `bson:"level"`
	Msg   string    `bson:"msg"`
	Attrs bson.M    `bson:"attrs,omitempty"`
}

type MongoHandler struct {
	inner  slog.Handler
	client *mongo.Client
	col    *mongo.Collection
	queue  chan logDocument
	done   chan struct{}
	attrs  []slog.Attr
}

// NewMongoHandler connects to MongoDB and starts the background writer.
// inner receives every record as well, so stdout logging keeps working.
func NewMongoHandler(uri, database, collection string, inner slog.Handler) (*MongoHandler, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	h := &MongoHandler{
		inner:  inner,
		client: client,
		col:    client.Database(database).Collection(collection),
		queue:  make(chan logDocument, mongoQueueSize),
		done:   make(chan struct{}),
	}
	go h.drain()
	return h, nil
}

func (h *MongoHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *MongoHandler) Handle(ctx context.Context, rec slog.Record) error {
	doc := logDocument{
		Time:  rec.Time,
		Level: rec.Level.String(),
		Msg:   rec.Message,
		Attrs: bson.M{},
	}
	for _, a := range h.attrs {
		doc.Attrs[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		doc.Attrs[a.Key] = a.Value.Any()
		return true
	})
	if len(doc.Attrs) == 0 {
		doc.Attrs = nil
	}

	// Never block the request path; drop when the queue is full.
	select {
	case h.queue <- doc:
	default:
	}

	return h.inner.Handle(ctx, rec)
}

func (h *MongoHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.inner = h.inner.WithAttrs(attrs)
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *MongoHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.inner = h.inner.WithGroup(name)
	return &clone
}

// Close flushes pending records and disconnects from MongoDB.
func (h *MongoHandler) Close() error {
	close(h.done)
	h.flush()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.client.Disconnect(ctx)
}

func (h *MongoHandler) drain() {
	ticker := time.NewTicker(mongoDrainTick)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.flush()
		}
	}
}

func (h *MongoHandler) flush() {
	for {
		batch := make([]interface{}, 0, mongoBatchSize)
		for len(batch) < mongoBatchSize {
			select {
			case doc := <-h.queue:
				batch = append(batch, doc)
			default:
				goto insert
			}
		}
	insert:
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _ = h.col.InsertMany(ctx, batch)
		cancel()

		if len(batch) < mongoBatchSize {
			return
		}
	}
}
