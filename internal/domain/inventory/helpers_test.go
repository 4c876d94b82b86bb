package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
	"github.com/tcgmarket/marketplace/internal/domain/inventory/mock"
	"go.uber.org/mock/gomock"
)

type repoMockT = mock.MockRepository

// repoMock returns a mock whose InTx runs the callback against the mock itself.
func repoMock(t *testing.T) *mock.MockRepository {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, inventory.Repository) error) error {
			return fn(ctx, repo)
		}).
		AnyTimes()
	return repo
}

type fakeImages struct {
	deleted []string
	err     error
}

func (f *fakeImages) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return f.err
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("equals %s", m.want)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: dec(s)}
}

func ptr[T any](v T) *T {
	return &v
}
