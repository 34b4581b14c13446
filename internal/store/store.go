package store

import (
	"context"
	"errors"
	"time"

	"plaza-rent-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Sentinel errors shared across all backend implementations. Callers classify
// failures with errors.Is; backends wrap these with detail.
var (
	// ErrNotFound covers references to tenants, leases, or rent records
	// that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers malformed input: negative amounts, non-positive
	// rent on create, malformed month strings, unknown enum values.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState covers operations that are well-formed but not
	// permitted in the current state, e.g. incrementing rent for a tenant
	// with no lease and no positive default percent.
	ErrInvalidState = errors.New("invalid state")

	// ErrConcurrentModification signals a lost optimistic-lock race on a
	// rent record's read-modify-write.
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// TenantParams contains the parameters for registering a tenant.
type TenantParams struct {
	Name            string
	Contact         string
	Premises        string
	MonthlyRent     decimal.Decimal
	SecurityDeposit decimal.Decimal
	EffectiveDate   time.Time
}

// LeaseParams contains the parameters for opening a lease. EndDate is derived
// by the backend from StartDate + DurationMonths.
type LeaseParams struct {
	TenantId         string
	StartDate        time.Time
	DurationMonths   int
	IncrementPercent decimal.Decimal
	ReminderDays     int
}

// PaymentParams contains the parameters for recording a payment receipt.
type PaymentParams struct {
	TenantId         string
	MonthYear        string
	Amount           decimal.Decimal
	PaymentDate      time.Time
	Method           models.PaymentMethod
	TransactionNo    string
	DepositedAccount string
}

// DepositAdjustmentParams contains the parameters for logging a deduction
// against a tenant's security deposit.
type DepositAdjustmentParams struct {
	TenantId    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// RentStore defines the contract that every backend must satisfy.
type RentStore interface {
	// --- Tenants ---
	GetTenants(ctx context.Context) ([]models.Tenant, error)
	GetActiveTenants(ctx context.Context) ([]models.Tenant, error)
	GetTenantById(ctx context.Context, tenantId string) (*models.Tenant, error)
	GetTenantByPremises(ctx context.Context, premises string) (*models.Tenant, error)
	CreateTenant(ctx context.Context, params TenantParams) (*models.Tenant, error)
	SetTenantStatus(ctx context.Context, tenantId string, status models.TenantStatus) error

	// --- Leases ---
	CreateLease(ctx context.Context, params LeaseParams) (*models.Lease, error)
	GetLeases(ctx context.Context) ([]models.Lease, error)
	GetLeaseByTenant(ctx context.Context, tenantId string) (*models.Lease, error)
	RenewLease(ctx context.Context, leaseId string) (*models.Lease, error)
	SetLeaseStatus(ctx context.Context, leaseId string, status models.LeaseStatus) error

	// --- Ledger ---
	GenerateMonthSheet(ctx context.Context, monthYear string) (*models.MonthSheetResult, error)
	RecordPayment(ctx context.Context, params PaymentParams) (*models.Payment, error)
	ListRecords(ctx context.Context, tenantId, monthYear string) ([]models.RentRecord, error)
	TenantLedger(ctx context.Context, tenantId string) (*models.TenantLedger, error)
	ComputeBalance(ctx context.Context, tenantId, monthYear string) (*decimal.Decimal, error)
	RecomputeForward(ctx context.Context, tenantId string) (int, error)

	// --- Rent increments ---
	ApplyIncrement(ctx context.Context, tenantId string) (*models.RentHistory, error)
	GetRentHistory(ctx context.Context, tenantId string) ([]models.RentHistory, error)

	// --- Deposit adjustments ---
	AddDepositAdjustment(ctx context.Context, params DepositAdjustmentParams) (*models.DepositAdjustment, error)
	GetDepositAdjustments(ctx context.Context, tenantId string) ([]models.DepositAdjustment, error)

	// --- Lifecycle ---
	Close()
}
