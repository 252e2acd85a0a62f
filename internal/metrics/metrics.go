package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messaging_messages_sent_total",
		Help: "Encrypted messages accepted by the relay.",
	})

	SendsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messaging_sends_rejected_total",
		Help: "Sends rejected before persistence, by reason.",
	}, []string{"reason"})

	PreKeysClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messaging_prekeys_claimed_total",
		Help: "One-time prekeys consumed by bundle fetches.",
	})

	PreKeyPoolEmpty = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messaging_prekey_pool_empty_total",
		Help: "Bundle fetches that degraded to signed-prekey-only.",
	})

	ReceiptsUpdated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messaging_receipts_updated_total",
		Help: "Delivered/read receipt updates applied.",
	}, []string{"kind"})

	SweepDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messaging_sweep_deleted_total",
		Help: "Rows removed by maintenance sweeps.",
	}, []string{"sweep"})
)
