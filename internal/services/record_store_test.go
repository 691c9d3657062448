package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"customer-records/internal/config"
	"customer-records/internal/database"
	apperrors "customer-records/internal/errors"
	"customer-records/internal/models"
	"customer-records/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// RecordStoreTestSuite runs the services against real repositories on sqlite
type RecordStoreTestSuite struct {
	suite.Suite
	ctx          context.Context
	db           *database.DB
	customers    CustomerServiceInterface
	interactions InteractionServiceInterface
	search       CustomerSearchServiceInterface
}

func (s *RecordStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())

	customerRepo := repositories.NewCustomerRepository(s.db.DB)
	interactionRepo := repositories.NewInteractionRepository(s.db.DB)
	logger := NewRecordLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	window := config.SearchConfig{DefaultLimit: 10, MaxLimit: 1000}

	s.customers = NewCustomerService(customerRepo, logger, metrics)
	s.interactions = NewInteractionService(interactionRepo, customerRepo, logger, metrics, window)
	s.search = NewCustomerSearchService(customerRepo, logger, metrics, window)
}

func (s *RecordStoreTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestRecordStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RecordStoreTestSuite))
}

func (s *RecordStoreTestSuite) addCustomer(name, email, phone string) *models.Customer {
	customer, err := s.customers.AddCustomer(s.ctx, name, email, phone)
	s.Require().NoError(err)
	return customer
}

func (s *RecordStoreTestSuite) TestIDsStrictlyIncrease() {
	var last uint64
	for i := 0; i < 5; i++ {
		customer := s.addCustomer(fmt.Sprintf("c%d", i), fmt.Sprintf("c%d@x.com", i), "555")
		s.Greater(customer.ID, last)
		last = customer.ID
	}

	_, err := s.customers.DeleteCustomer(s.ctx, last)
	s.Require().NoError(err)

	next := s.addCustomer("next", "next@x.com", "1")
	s.Greater(next.ID, last)
}

func (s *RecordStoreTestSuite) TestRoundTrip() {
	created := s.addCustomer("Ann", "a@x.com", "1")

	fetched, err := s.customers.GetCustomer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Details(), fetched.Details())
	s.False(fetched.CreatedAt.IsZero())
}

func (s *RecordStoreTestSuite) TestGetAfterDeleteIsNotFound() {
	created := s.addCustomer("Ann", "a@x.com", "1")

	removed, err := s.customers.DeleteCustomer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, removed.ID)

	_, err = s.customers.GetCustomer(s.ctx, created.ID)
	s.True(apperrors.IsNotFound(err))

	_, err = s.customers.DeleteCustomer(s.ctx, created.ID)
	s.True(apperrors.IsNotFound(err))
}

func (s *RecordStoreTestSuite) TestUpdatePreservesIdentity() {
	created := s.addCustomer("Ann", "a@x.com", "1")

	updated, err := s.customers.UpdateCustomer(s.ctx, created.ID, "Anna", "anna@x.com", "2")
	s.Require().NoError(err)

	s.Equal(created.ID, updated.ID)
	s.True(created.CreatedAt.Equal(updated.CreatedAt))
	s.Equal(models.CustomerDetails{Name: "Anna", Email: "anna@x.com", Phone: "2"}, updated.Details())
}

func (s *RecordStoreTestSuite) TestUpdateMissingCustomerWinsOverInvalidInput() {
	_, err := s.customers.UpdateCustomer(s.ctx, 4242, "", "", "")
	s.True(apperrors.IsNotFound(err))
}

func (s *RecordStoreTestSuite) TestSearchAnnAndBob() {
	ann := s.addCustomer("Ann", "a@x.com", "1")
	s.addCustomer("Bob", "b@y.com", "2")

	name := "an"
	result, err := s.search.SearchCustomers(s.ctx, models.CustomerFilter{Name: &name}, 0, 10)
	s.Require().NoError(err)

	s.Equal(int64(1), result.TotalItems)
	s.Require().Len(result.Items, 1)
	s.Equal(ann.ID, result.Items[0].ID)
}

func (s *RecordStoreTestSuite) TestSearchPaginationCoversEveryMatch() {
	for i := 0; i < 23; i++ {
		s.addCustomer(fmt.Sprintf("Member %02d", i), fmt.Sprintf("m%d@club.org", i), "100")
	}
	s.addCustomer("Outsider", "o@else.net", "9")

	email := "CLUB"
	filter := models.CustomerFilter{Email: &email}

	seen := make(map[uint64]bool)
	for offset := 0; ; offset += 5 {
		page, err := s.search.SearchCustomers(s.ctx, filter, offset, 5)
		s.Require().NoError(err)
		s.Equal(int64(23), page.TotalItems)
		if len(page.Items) == 0 {
			break
		}
		for _, c := range page.Items {
			s.False(seen[c.ID], "customer %d returned twice", c.ID)
			seen[c.ID] = true
		}
	}
	s.Len(seen, 23)
}

func (s *RecordStoreTestSuite) TestEmptyFilterMatchesAll() {
	for i := 0; i < 12; i++ {
		s.addCustomer(fmt.Sprintf("c%d", i), fmt.Sprintf("c%d@x.com", i), "1")
	}

	result, err := s.search.SearchCustomers(s.ctx, models.CustomerFilter{}, -3, 10)
	s.Require().NoError(err)

	s.Equal(int64(12), result.TotalItems)
	s.Len(result.Items, 10)
	s.Equal(0, result.Offset)
	s.Equal(10, result.Limit)
}

func (s *RecordStoreTestSuite) TestSearchZeroLimitReturnsEmptyPage() {
	for i := 0; i < 12; i++ {
		s.addCustomer(fmt.Sprintf("c%d", i), fmt.Sprintf("c%d@x.com", i), "1")
	}

	result, err := s.search.SearchCustomers(s.ctx, models.CustomerFilter{}, 0, 0)
	s.Require().NoError(err)

	s.Equal(int64(12), result.TotalItems)
	s.Empty(result.Items)
	s.Equal(0, result.Limit)

	result, err = s.search.SearchCustomers(s.ctx, models.CustomerFilter{}, 0, -5)
	s.Require().NoError(err)
	s.Equal(int64(12), result.TotalItems)
	s.Empty(result.Items)
}

func (s *RecordStoreTestSuite) TestSearchPageNeverExceedsLimit() {
	for i := 0; i < 8; i++ {
		s.addCustomer(fmt.Sprintf("Member %d", i), fmt.Sprintf("m%d@club.org", i), "100")
	}
	s.addCustomer("Outsider", "o@else.net", "9")

	email := "club"
	filters := []models.CustomerFilter{{}, {Email: &email}}

	for _, filter := range filters {
		for _, limit := range []int{0, 1, 3} {
			for offset := 0; offset <= 10; offset++ {
				page, err := s.search.SearchCustomers(s.ctx, filter, offset, limit)
				s.Require().NoError(err)
				s.LessOrEqual(len(page.Items), limit, "offset=%d limit=%d", offset, limit)

				want := int(page.TotalItems) - offset
				if want < 0 {
					want = 0
				}
				if want > limit {
					want = limit
				}
				s.Len(page.Items, want, "offset=%d limit=%d", offset, limit)
			}
		}
	}
}

func (s *RecordStoreTestSuite) TestListInteractionsZeroLimitReturnsEmptyPage() {
	customer := s.addCustomer("Ann", "a@x.com", "1")
	for i := 0; i < 3; i++ {
		_, err := s.interactions.AddInteraction(s.ctx, models.InteractionPayload{
			CustomerID:      customer.ID,
			InteractionType: "call",
			Content:         fmt.Sprintf("call %d", i),
		})
		s.Require().NoError(err)
	}

	list, err := s.interactions.ListCustomerInteractions(s.ctx, customer.ID, 0, 0)
	s.Require().NoError(err)
	s.Equal(int64(3), list.TotalItems)
	s.Empty(list.Items)

	list, err = s.interactions.ListCustomerInteractions(s.ctx, customer.ID, 1, 1)
	s.Require().NoError(err)
	s.Len(list.Items, 1)
}

func (s *RecordStoreTestSuite) TestSearchFoldsNonASCIICase() {
	zoe := s.addCustomer("Ärzte Zoë", "zoe@praxis.de", "030")
	s.addCustomer("Bob", "b@y.com", "2")

	for _, needle := range []string{"ärzte", "ÄRZTE", "zoë", "ZOË"} {
		name := needle
		result, err := s.search.SearchCustomers(s.ctx, models.CustomerFilter{Name: &name}, 0, 10)
		s.Require().NoError(err)
		s.Require().Equal(int64(1), result.TotalItems, needle)
		s.Equal(zoe.ID, result.Items[0].ID)
	}
}

func (s *RecordStoreTestSuite) TestFieldLengthCaps() {
	long := func(n int) string { return strings.Repeat("7", n) }

	_, err := s.customers.AddCustomer(s.ctx, "Ann", "a@x.com", long(models.MaxPhoneLength+1))
	s.True(apperrors.IsInvalidInput(err))

	_, err = s.customers.AddCustomer(s.ctx, long(models.MaxNameLength+1), "a@x.com", "1")
	s.True(apperrors.IsInvalidInput(err))

	_, err = s.customers.AddCustomer(s.ctx, "Ann", long(models.MaxEmailLength)+"@x.com", "1")
	s.True(apperrors.IsInvalidInput(err))

	customer := s.addCustomer("Ann", "a@x.com", long(models.MaxPhoneLength))

	_, err = s.customers.UpdateCustomer(s.ctx, customer.ID, "Ann", "a@x.com", long(models.MaxPhoneLength+1))
	s.True(apperrors.IsInvalidInput(err))

	_, err = s.interactions.AddInteraction(s.ctx, models.InteractionPayload{
		CustomerID:      customer.ID,
		InteractionType: strings.Repeat("x", models.MaxInteractionTypeLength+1),
		Content:         "hello",
	})
	s.True(apperrors.IsInvalidInput(err))

	_, err = s.interactions.AddInteraction(s.ctx, models.InteractionPayload{
		CustomerID:      customer.ID,
		InteractionType: "call",
		Content:         strings.Repeat("x", models.MaxContentLength+1),
	})
	s.True(apperrors.IsInvalidInput(err))
}

func (s *RecordStoreTestSuite) TestInteractionForUnknownCustomer() {
	_, err := s.interactions.AddInteraction(s.ctx, models.InteractionPayload{
		CustomerID:      999,
		InteractionType: "call",
		Content:         "hello",
	})
	s.True(apperrors.IsNotFound(err))
}

func (s *RecordStoreTestSuite) TestInteractionLifecycle() {
	customer := s.addCustomer("Ann", "a@x.com", "1")

	created, err := s.interactions.AddInteraction(s.ctx, models.InteractionPayload{
		CustomerID:      customer.ID,
		InteractionType: "call",
		Content:         "intro",
	})
	s.Require().NoError(err)
	s.Nil(created.UpdatedAt)

	updated, err := s.interactions.UpdateInteraction(s.ctx, created.ID, models.InteractionPayload{
		CustomerID:      customer.ID,
		InteractionType: "email",
		Content:         "follow up",
	})
	s.Require().NoError(err)
	s.Equal(created.ID, updated.ID)
	s.True(created.CreatedAt.Equal(updated.CreatedAt))
	s.Require().NotNil(updated.UpdatedAt)
	s.Equal("follow up", updated.Content)

	list, err := s.interactions.ListCustomerInteractions(s.ctx, customer.ID, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), list.TotalItems)
	s.Len(list.Items, 1)

	_, err = s.interactions.DeleteInteraction(s.ctx, created.ID)
	s.Require().NoError(err)

	_, err = s.interactions.GetInteraction(s.ctx, created.ID)
	s.True(apperrors.IsNotFound(err))
}

func (s *RecordStoreTestSuite) TestDeleteCustomerRemovesInteractions() {
	customer := s.addCustomer("Ann", "a@x.com", "1")
	other := s.addCustomer("Bob", "b@y.com", "2")

	var ids []uint64
	for _, owner := range []uint64{customer.ID, customer.ID, other.ID} {
		interaction, err := s.interactions.AddInteraction(s.ctx, models.InteractionPayload{
			CustomerID:      owner,
			InteractionType: "note",
			Content:         "text",
		})
		s.Require().NoError(err)
		ids = append(ids, interaction.ID)
	}

	_, err := s.customers.DeleteCustomer(s.ctx, customer.ID)
	s.Require().NoError(err)

	for _, id := range ids[:2] {
		_, err := s.interactions.GetInteraction(s.ctx, id)
		s.True(apperrors.IsNotFound(err))
	}

	kept, err := s.interactions.GetInteraction(s.ctx, ids[2])
	s.Require().NoError(err)
	s.Equal(other.ID, kept.CustomerID)
}
