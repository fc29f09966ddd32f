package main

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/scaling-engine-api/internal/config"
)

type migration struct {
	Name      string
	Statement string
}

// migrations são idempotentes, podem ser executadas a cada deploy
var migrations = []migration{
	{
		Name: "ad_daily_records",
		Statement: `
			CREATE TABLE IF NOT EXISTS ad_daily_records (
				id               BIGSERIAL PRIMARY KEY,
				ad_name          TEXT NOT NULL,
				campaign_name    TEXT NOT NULL DEFAULT '',
				ad_set_name      TEXT NOT NULL DEFAULT '',
				date             DATE NOT NULL,
				spend            DOUBLE PRECISION NOT NULL DEFAULT 0,
				purchases        DOUBLE PRECISION NOT NULL DEFAULT 0,
				conversion_value DOUBLE PRECISION NOT NULL DEFAULT 0,
				ctr              DOUBLE PRECISION NOT NULL DEFAULT 0,
				hook_rate        DOUBLE PRECISION NOT NULL DEFAULT 0,
				cpm              DOUBLE PRECISION NOT NULL DEFAULT 0,
				import_batch_id  TEXT NOT NULL DEFAULT '',
				created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (ad_name, date)
			)`,
	},
	{
		Name: "ad_assessments",
		Statement: `
			CREATE TABLE IF NOT EXISTS ad_assessments (
				ad_name       TEXT PRIMARY KEY,
				phase         TEXT NOT NULL,
				status        TEXT NOT NULL,
				reason        TEXT NOT NULL DEFAULT '',
				total_spend   DOUBLE PRECISION NOT NULL DEFAULT 0,
				stop_loss     DOUBLE PRECISION NOT NULL DEFAULT 0,
				roas          DOUBLE PRECISION NOT NULL DEFAULT 0,
				ad_score      INTEGER NOT NULL DEFAULT 0,
				trend         TEXT NOT NULL DEFAULT '',
				trajectory    TEXT NOT NULL DEFAULT '',
				decay         JSONB,
				days          INTEGER NOT NULL DEFAULT 0,
				last_date     DATE,
				evaluated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				error_message TEXT NOT NULL DEFAULT ''
			)`,
	},
	{
		Name: "shopify_orders",
		Statement: `
			CREATE TABLE IF NOT EXISTS shopify_orders (
				order_id           TEXT PRIMARY KEY,
				shopify_id         TEXT NOT NULL DEFAULT '',
				email              TEXT NOT NULL DEFAULT '',
				phone              TEXT NOT NULL DEFAULT '',
				billing_phone      TEXT NOT NULL DEFAULT '',
				billing_name       TEXT NOT NULL DEFAULT '',
				shipping_name      TEXT NOT NULL DEFAULT '',
				shipping_city      TEXT NOT NULL DEFAULT '',
				shipping_state     TEXT NOT NULL DEFAULT '',
				shipping_pincode   TEXT NOT NULL DEFAULT '',
				subtotal           DOUBLE PRECISION NOT NULL DEFAULT 0,
				total              DOUBLE PRECISION NOT NULL DEFAULT 0,
				discount_code      TEXT NOT NULL DEFAULT '',
				discount_amount    DOUBLE PRECISION NOT NULL DEFAULT 0,
				refunded_amount    DOUBLE PRECISION NOT NULL DEFAULT 0,
				financial_status   TEXT NOT NULL DEFAULT '',
				fulfillment_status TEXT NOT NULL DEFAULT '',
				payment_method_raw TEXT NOT NULL DEFAULT '',
				payment_mode       TEXT NOT NULL DEFAULT '',
				order_created_at   TIMESTAMP,
				cancelled_at       TIMESTAMP,
				source             TEXT NOT NULL DEFAULT '',
				tags               TEXT NOT NULL DEFAULT '',
				line_items         JSONB NOT NULL DEFAULT '[]',
				import_batch_id    TEXT NOT NULL DEFAULT '',
				created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		Name: "shipments",
		Statement: `
			CREATE TABLE IF NOT EXISTS shipments (
				awb                 TEXT PRIMARY KEY,
				order_id            TEXT NOT NULL DEFAULT '',
				status_raw          TEXT NOT NULL DEFAULT '',
				status              TEXT NOT NULL DEFAULT '',
				drop_name           TEXT NOT NULL DEFAULT '',
				drop_phone          TEXT NOT NULL DEFAULT '',
				drop_email          TEXT NOT NULL DEFAULT '',
				drop_city           TEXT NOT NULL DEFAULT '',
				drop_state          TEXT NOT NULL DEFAULT '',
				drop_pincode        TEXT NOT NULL DEFAULT '',
				courier_partner     TEXT NOT NULL DEFAULT '',
				payment_mode        TEXT NOT NULL DEFAULT '',
				shipment_created_at TIMESTAMP,
				pickup_at           TIMESTAMP,
				delivered_at        TIMESTAMP,
				rto_delivered_at    TIMESTAMP,
				min_tat             INTEGER,
				max_tat             INTEGER,
				ndr_status          TEXT NOT NULL DEFAULT '',
				total_attempts      INTEGER,
				latest_remark       TEXT NOT NULL DEFAULT '',
				merchant_price      DOUBLE PRECISION,
				merchant_price_rto  DOUBLE PRECISION,
				import_batch_id     TEXT NOT NULL DEFAULT '',
				created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		Name:      "shipments_order_id_idx",
		Statement: `CREATE INDEX IF NOT EXISTS shipments_order_id_idx ON shipments (order_id)`,
	},
	{
		Name: "unified_orders",
		Statement: `
			CREATE TABLE IF NOT EXISTS unified_orders (
				order_id            TEXT PRIMARY KEY,
				customer_email      TEXT NOT NULL DEFAULT '',
				customer_phone      TEXT NOT NULL DEFAULT '',
				customer_name       TEXT NOT NULL DEFAULT '',
				customer_city       TEXT NOT NULL DEFAULT '',
				customer_state      TEXT NOT NULL DEFAULT '',
				customer_pincode    TEXT NOT NULL DEFAULT '',
				order_date          TIMESTAMP,
				total_amount        DOUBLE PRECISION NOT NULL DEFAULT 0,
				subtotal            DOUBLE PRECISION NOT NULL DEFAULT 0,
				discount_amount     DOUBLE PRECISION NOT NULL DEFAULT 0,
				lineitem_names      TEXT NOT NULL DEFAULT '',
				total_quantity      INTEGER NOT NULL DEFAULT 0,
				line_items          JSONB NOT NULL DEFAULT '[]',
				payment_mode        TEXT NOT NULL DEFAULT '',
				financial_status    TEXT NOT NULL DEFAULT '',
				awb                 TEXT NOT NULL DEFAULT '',
				delivery_status     TEXT NOT NULL DEFAULT '',
				delivery_status_raw TEXT NOT NULL DEFAULT '',
				courier_partner     TEXT NOT NULL DEFAULT '',
				pickup_date         TIMESTAMP,
				delivery_date       TIMESTAMP,
				rto_date            TIMESTAMP,
				dispatch_hours      DOUBLE PRECISION,
				dispatch_category   TEXT NOT NULL DEFAULT '',
				is_delivered        BOOLEAN NOT NULL DEFAULT FALSE,
				is_in_transit       BOOLEAN NOT NULL DEFAULT FALSE,
				is_rto              BOOLEAN NOT NULL DEFAULT FALSE,
				is_cancelled        BOOLEAN NOT NULL DEFAULT FALSE,
				is_refunded         BOOLEAN NOT NULL DEFAULT FALSE,
				is_not_shipped      BOOLEAN NOT NULL DEFAULT FALSE,
				revenue_category    TEXT NOT NULL DEFAULT ''
			)`,
	},
	{
		Name:      "unified_orders_order_date_idx",
		Statement: `CREATE INDEX IF NOT EXISTS unified_orders_order_date_idx ON unified_orders (order_date)`,
	},
	{
		Name: "import_log",
		Statement: `
			CREATE TABLE IF NOT EXISTS import_log (
				batch_id         TEXT PRIMARY KEY,
				source           TEXT NOT NULL,
				file_name        TEXT NOT NULL DEFAULT '',
				records_total    INTEGER NOT NULL DEFAULT 0,
				records_new      INTEGER NOT NULL DEFAULT 0,
				records_updated  INTEGER NOT NULL DEFAULT 0,
				records_failed   INTEGER NOT NULL DEFAULT 0,
				line_items_count INTEGER NOT NULL DEFAULT 0,
				imported_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao abrir conexão com o banco")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco")
	}

	if err := run(db, migrations); err != nil {
		logrus.WithError(err).Fatal("ERRO ao executar migração")
	}

	logrus.Info("Migração concluída com sucesso")
}

// run executa todas as migrações numa única transação
func run(db *sql.DB, list []migration) error {
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	for _, m := range list {
		logrus.Infof("Aplicando %s...", m.Name)
		if _, err := tx.Exec(m.Statement); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logrus.Infof("%d migrações aplicadas em %v", len(list), time.Since(startTime))
	return nil
}
