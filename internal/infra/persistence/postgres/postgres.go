package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"shopkeep/config"
	"shopkeep/internal/domain/lifecycle"
	"shopkeep/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const dbPoolMonitorInterval = 5 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the save store. The tables are migrated when the application starts.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Snapshots and events are written through txManager.Execute only.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := poolMonitor{
		logger:        params.Logger,
		db:            sqlDB,
		interval:      dbPoolMonitorInterval,
		warnThreshold: defaultGormSlowThreshold,
	}
	if params.Config.Storage != nil && params.Config.Storage.SlowQueryThreshold > 0 {
		monitor.warnThreshold = params.Config.Storage.SlowQueryThreshold
	}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := Migrate(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("Save store ready", slog.String("driver", config.StorageDriverPostgres))

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the save slot tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.SaveSlotModel{}, &model.GameEventModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate save slot tables")
	}

	return nil
}

// poolMonitor reports requests that had to wait for a pooled connection. Waits longer than
// the slow query threshold are warnings.
type poolMonitor struct {
	logger        *slog.Logger
	db            *sql.DB
	interval      time.Duration
	warnThreshold time.Duration
}

func (m poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.db == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}
	if waitDurationDelta >= m.warnThreshold {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "Save store connections are congested", attrs...)

		return
	}
	m.logger.LogAttrs(ctx, slog.LevelDebug, "Save store waited for a connection", attrs...)
}
