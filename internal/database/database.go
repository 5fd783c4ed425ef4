package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neoflix/internal/config"
	"neoflix/internal/metrics"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	neo4jconfig "github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"github.com/sirupsen/logrus"
)

// Row is one record of a query result keyed by column name. Values are
// already normalized for JSON (see Normalize).
type Row map[string]any

// Tx runs parameterized Cypher inside a transaction.
type Tx interface {
	Run(ctx context.Context, query string, params map[string]any) ([]Row, error)
}

type TxFunc func(ctx context.Context, tx Tx) (any, error)

// Graph is the transactional surface the services depend on. Each call
// acquires a session for its duration and releases it on every exit path.
type Graph interface {
	ReadTx(ctx context.Context, work TxFunc) (any, error)
	WriteTx(ctx context.Context, work TxFunc) (any, error)
}

type Database struct {
	driver neo4j.DriverWithContext
	config config.Neo4jConfig
	logger *logrus.Logger
}

func Connect(ctx context.Context, cfg config.Neo4jConfig, logger *logrus.Logger) (*Database, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(c *neo4jconfig.Config) {
			if cfg.MaxPoolSize > 0 {
				c.MaxConnectionPoolSize = cfg.MaxPoolSize
			}
			if cfg.AcquisitionTimeout > 0 {
				c.ConnectionAcquisitionTimeout = cfg.AcquisitionTimeout
			}
		},
	)
	if err != nil {
		logger.WithError(err).Error("Failed to create Neo4j driver")
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if cfg.VerifyConnectivity {
		verifyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := driver.VerifyConnectivity(verifyCtx); err != nil {
			_ = driver.Close(ctx)
			logger.WithError(err).WithField("uri", cfg.URI).Error("Failed to connect to Neo4j")
			return nil, fmt.Errorf("failed to connect to neo4j: %w", err)
		}
	}

	logger.WithFields(logrus.Fields{
		"uri":      cfg.URI,
		"database": cfg.Database,
	}).Info("Neo4j connection established successfully")

	return &Database{
		driver: driver,
		config: cfg,
		logger: logger,
	}, nil
}

func (d *Database) ReadTx(ctx context.Context, work TxFunc) (any, error) {
	return d.execute(ctx, neo4j.AccessModeRead, work)
}

func (d *Database) WriteTx(ctx context.Context, work TxFunc) (any, error) {
	return d.execute(ctx, neo4j.AccessModeWrite, work)
}

func (d *Database) execute(ctx context.Context, mode neo4j.AccessMode, work TxFunc) (result any, err error) {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: d.config.Database,
	})
	defer func() {
		if closeErr := session.Close(ctx); closeErr != nil {
			d.logger.WithError(closeErr).Warn("Failed to close Neo4j session")
			err = errors.Join(err, closeErr)
		}
	}()

	label := "read"
	runner := session.ExecuteRead
	if mode == neo4j.AccessModeWrite {
		label = "write"
		runner = session.ExecuteWrite
	}

	start := time.Now()
	result, err = runner(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return work(ctx, &managedTx{tx: tx})
	})
	metrics.ObserveGraphTx(label, err, time.Since(start))
	return result, err
}

func (d *Database) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return d.driver.VerifyConnectivity(ctx)
}

func (d *Database) Close(ctx context.Context) error {
	return d.driver.Close(ctx)
}

type managedTx struct {
	tx neo4j.ManagedTransaction
}

func (t *managedTx) Run(ctx context.Context, query string, params map[string]any) ([]Row, error) {
	result, err := t.tx.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, toRow(record.Keys, record.Values))
	}
	return rows, nil
}

func toRow(keys []string, values []any) Row {
	row := make(Row, len(keys))
	for i, key := range keys {
		row[key] = Normalize(values[i])
	}
	return row
}

// Read runs work in a read transaction and returns its typed result.
func Read[T any](ctx context.Context, g Graph, work func(ctx context.Context, tx Tx) (T, error)) (T, error) {
	return run(ctx, g.ReadTx, work)
}

// Write runs work in a write transaction and returns its typed result.
func Write[T any](ctx context.Context, g Graph, work func(ctx context.Context, tx Tx) (T, error)) (T, error) {
	return run(ctx, g.WriteTx, work)
}

func run[T any](ctx context.Context, exec func(context.Context, TxFunc) (any, error), work func(ctx context.Context, tx Tx) (T, error)) (T, error) {
	var zero T
	result, err := exec(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return work(ctx, tx)
	})
	if err != nil {
		return zero, err
	}
	typed, _ := result.(T)
	return typed, nil
}

const constraintValidationFailed = "Neo.ClientError.Schema.ConstraintValidationFailed"

// IsConstraintViolation reports whether err is a uniqueness or other schema
// constraint failure raised by the server.
func IsConstraintViolation(err error) bool {
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) {
		return neoErr.Code == constraintValidationFailed
	}
	return false
}
