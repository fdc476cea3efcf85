package metrics

import (
	"context"
	"errors"
	"testing"

	"buscador_cep/internal/domain/entities"
	mock_interfaces "buscador_cep/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

func TestInstrumentedGateway_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := mock_interfaces.NewMockIAddressLookupGateway(ctrl)
	gomock.InOrder(
		next.EXPECT().Lookup(gomock.Any(), "01001000").Return(entities.FoundResult(entities.Address{PostalCode: "01001-000"}), nil),
		next.EXPECT().Lookup(gomock.Any(), "00000000").Return(entities.NotFoundResult(), nil),
		next.EXPECT().Lookup(gomock.Any(), "20040020").Return(entities.LookupResult{}, errors.New("dial tcp: timeout")),
	)

	reg := prometheus.NewRegistry()
	g := NewInstrumentedGateway(next, reg)

	res, err := g.Lookup(context.Background(), "01001000")
	if err != nil || !res.IsFound() {
		t.Fatalf("result must be forwarded, got %+v err=%v", res, err)
	}
	_, _ = g.Lookup(context.Background(), "00000000")
	if _, err := g.Lookup(context.Background(), "20040020"); err == nil {
		t.Fatalf("error must be forwarded")
	}

	for outcome, want := range map[string]float64{"found": 1, "not_found": 1, "transport_error": 1} {
		if got := testutil.ToFloat64(g.lookups.WithLabelValues(outcome)); got != want {
			t.Fatalf("outcome %s: got %v want %v", outcome, got, want)
		}
	}
	if n := testutil.CollectAndCount(g.latency); n != 1 {
		t.Fatalf("expected histogram to be collected once, got %d", n)
	}
}
