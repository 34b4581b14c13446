package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/month"
	"plaza-rent-ledger/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecordPayment creates the immutable payment receipt, then applies it to the
// matching rent record. When settlement fails (no record for the month, or a
// failed balance update) the receipt is still kept for later reconciliation
// and the call returns the created payment alongside the error; callers must
// not treat the payment as lost.
func (s *Service) RecordPayment(ctx context.Context, params store.PaymentParams) (*models.Payment, error) {
	if err := validatePaymentParams(params); err != nil {
		return nil, err
	}

	if _, err := s.GetTenantById(ctx, params.TenantId); err != nil {
		return nil, err
	}

	paymentDate := params.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	payment := &models.Payment{
		Id:               uuid.New().String(),
		TenantId:         params.TenantId,
		MonthYear:        params.MonthYear,
		Amount:           params.Amount,
		PaymentDate:      paymentDate,
		Method:           params.Method,
		TransactionNo:    params.TransactionNo,
		DepositedAccount: params.DepositedAccount,
		CreatedAt:        time.Now(),
	}

	_, err := s.db.ExecContext(ctx, queryInsertPayment,
		payment.Id, payment.TenantId, payment.MonthYear,
		payment.Amount.String(), payment.PaymentDate,
		string(payment.Method), payment.TransactionNo, payment.DepositedAccount)
	if err != nil {
		return nil, fmt.Errorf("unable to insert payment: %w", err)
	}

	zap.L().Info("Payment recorded",
		zap.String("payment_id", payment.Id),
		zap.String("tenant_id", payment.TenantId),
		zap.String("month_year", payment.MonthYear),
		zap.String("amount", payment.Amount.String()),
		zap.String("method", string(payment.Method)))

	_, err = s.ledger.applyPayment(ctx, payment.TenantId, payment.MonthYear, payment.Amount)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			zap.L().Warn("Payment recorded against month with no rent record",
				zap.String("payment_id", payment.Id),
				zap.String("tenant_id", payment.TenantId),
				zap.String("month_year", payment.MonthYear))
		} else {
			zap.L().Error("Payment recorded but balance update failed",
				zap.String("payment_id", payment.Id),
				zap.String("tenant_id", payment.TenantId),
				zap.String("month_year", payment.MonthYear),
				zap.Error(err))
		}
		// The receipt stays on file either way; only the balance update is
		// missing. Callers need the stored payment's id to reconcile later.
		return payment, err
	}

	return payment, nil
}

func validatePaymentParams(params store.PaymentParams) error {
	if params.TenantId == "" {
		return fmt.Errorf("%w: tenant id is required", store.ErrValidation)
	}
	if !month.Valid(params.MonthYear) {
		return fmt.Errorf("%w: invalid month %q", store.ErrValidation, params.MonthYear)
	}
	if !params.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive, got %s", store.ErrValidation, params.Amount.String())
	}
	if !params.Method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", store.ErrValidation, params.Method)
	}
	return nil
}

func scanPayments(rows *sql.Rows) ([]models.Payment, error) {
	var payments []models.Payment
	for rows.Next() {
		var payment models.Payment
		var amountStr, methodStr string
		err := rows.Scan(&payment.Id, &payment.TenantId, &payment.MonthYear,
			&amountStr, &payment.PaymentDate, &methodStr,
			&payment.TransactionNo, &payment.DepositedAccount, &payment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		if payment.Amount, err = decimal.NewFromString(amountStr); err != nil {
			return nil, fmt.Errorf("failed to parse payment amount '%s': %w", amountStr, err)
		}
		payment.Method = models.PaymentMethod(methodStr)

		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
