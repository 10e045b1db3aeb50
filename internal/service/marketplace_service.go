package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// MarketplaceServiceImpl implements ports.MarketplaceLifecycle.
type MarketplaceServiceImpl struct {
	txs      ports.TransactionRepository
	products ports.ProductRepository
	resolver ports.EntityResolver
	notifier ports.Notifier
	now      func() time.Time
	log      zerolog.Logger
}

// NewMarketplaceService creates a new MarketplaceServiceImpl.
func NewMarketplaceService(
	txs ports.TransactionRepository,
	products ports.ProductRepository,
	resolver ports.EntityResolver,
	notifier ports.Notifier,
	log zerolog.Logger,
) *MarketplaceServiceImpl {
	return &MarketplaceServiceImpl{
		txs:      txs,
		products: products,
		resolver: resolver,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
}

// PaymentSucceeded completes a pending transaction, counting the sale in the
// same write, then requests the order confirmation.
func (s *MarketplaceServiceImpl) PaymentSucceeded(ctx context.Context, evt *domain.Event) error {
	pi, tx, err := s.loadTransaction(ctx, evt)
	if err != nil {
		return err
	}
	log := s.log.With().Str("event_id", evt.ID).Str("transaction_id", tx.ID).Str("payment_intent_id", pi.ID).Logger()

	// Step 1: state
	switch tx.Status {
	case domain.TransactionStatusPending:
		moved, sales, err := s.txs.Complete(ctx, tx.ID, pi.ID, s.now())
		if err != nil {
			return fmt.Errorf("complete transaction %s: %w", tx.ID, err)
		}
		if moved {
			log.Info().Str("product_id", tx.ProductID).Int64("sales_count", sales).Msg("transaction completed")
		}
		// re-read: a concurrent delivery may have moved it either way
		if tx, err = s.txs.GetByID(ctx, tx.ID); err != nil {
			return fmt.Errorf("reload transaction: %w", err)
		}
	case domain.TransactionStatusCompleted:
		log.Debug().Msg("transaction already completed")
	default:
		log.Warn().Str("status", string(tx.Status)).Msg("succeeded payment for terminal transaction, ignoring")
		return nil
	}

	// Step 2: notification, repeatable
	if tx == nil || tx.Status != domain.TransactionStatusCompleted {
		return nil
	}
	return s.confirmOrder(ctx, log, tx)
}

// PaymentFailed moves a pending transaction to failed with the provider's reason.
func (s *MarketplaceServiceImpl) PaymentFailed(ctx context.Context, evt *domain.Event) error {
	pi, tx, err := s.loadTransaction(ctx, evt)
	if err != nil {
		return err
	}
	log := s.log.With().Str("event_id", evt.ID).Str("transaction_id", tx.ID).Logger()

	if tx.Status != domain.TransactionStatusPending {
		log.Info().Str("status", string(tx.Status)).Msg("transaction already terminal, failure ignored")
		return nil
	}

	reason := pi.failureReason()
	moved, err := s.txs.Fail(ctx, tx.ID, pi.ID, reason, s.now())
	if err != nil {
		return fmt.Errorf("fail transaction %s: %w", tx.ID, err)
	}
	if moved {
		log.Info().Str("reason", reason).Msg("transaction failed")
	} else {
		log.Info().Msg("transaction left pending concurrently, failure ignored")
	}
	return nil
}

// loadTransaction decodes the payment intent and fetches the transaction its
// metadata points at. Missing or inconsistent metadata is a skip.
func (s *MarketplaceServiceImpl) loadTransaction(ctx context.Context, evt *domain.Event) (*paymentIntentPayload, *domain.MarketplaceTransaction, error) {
	var pi paymentIntentPayload
	if err := decodeObject(evt, &pi); err != nil {
		return nil, nil, err
	}

	meta, missing := parseOrderMetadata(pi.Metadata)
	if len(missing) > 0 {
		return nil, nil, domain.Skip("payment intent %s missing metadata %s", pi.ID, strings.Join(missing, ","))
	}

	tx, err := s.txs.GetByID(ctx, meta.TransactionID)
	if err != nil {
		return nil, nil, fmt.Errorf("load transaction %s: %w", meta.TransactionID, err)
	}
	if tx == nil {
		return nil, nil, domain.Skip("transaction %s not found", meta.TransactionID)
	}
	if tx.ProductID != meta.ProductID || tx.BuyerID != meta.BuyerID || tx.SellerID != meta.ExpertID {
		return nil, nil, domain.Skip("payment intent %s metadata does not match transaction %s", pi.ID, tx.ID)
	}
	return &pi, tx, nil
}

func (s *MarketplaceServiceImpl) confirmOrder(ctx context.Context, log zerolog.Logger, tx *domain.MarketplaceTransaction) error {
	product, err := s.products.GetByID(ctx, tx.ProductID)
	if err != nil {
		return fmt.Errorf("load product %s: %w", tx.ProductID, err)
	}
	buyer, err := s.resolver.User(ctx, tx.BuyerID)
	if err != nil {
		return err
	}
	seller, err := s.resolver.Expert(ctx, tx.SellerID)
	if err != nil {
		return err
	}
	if product == nil || buyer == nil || seller == nil {
		log.Warn().
			Bool("product_found", product != nil).
			Bool("buyer_found", buyer != nil).
			Bool("seller_found", seller != nil).
			Msg("order confirmation skipped, parties missing")
		return nil
	}

	s.notifier.OrderConfirmation(ctx, tx, product, buyer, seller)
	return nil
}
