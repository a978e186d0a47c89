package models

// Every status field is a closed set of string values. The Valid()
// methods are the gate: reducers reject anything outside the set, so
// the columns never hold a value that isn't listed here.

type OutletStatus string

const (
	OutletOpen       OutletStatus = "Open"
	OutletClosed     OutletStatus = "Closed"
	OutletRenovation OutletStatus = "Renovation"
	OutletPlanned    OutletStatus = "Planned"
)

func (s OutletStatus) Valid() bool {
	switch s {
	case OutletOpen, OutletClosed, OutletRenovation, OutletPlanned:
		return true
	}
	return false
}

type UserRole string

const (
	RoleAdminPusat    UserRole = "AdminPusat"
	RoleAreaManager   UserRole = "AreaManager"
	RoleOutletManager UserRole = "OutletManager"
	RoleKasir         UserRole = "Kasir"
	RoleHR            UserRole = "HR"
	RoleGudang        UserRole = "Gudang"
	RoleFinance       UserRole = "Finance"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdminPusat, RoleAreaManager, RoleOutletManager, RoleKasir, RoleHR, RoleGudang, RoleFinance:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	EmploymentActive   EmploymentStatus = "Active"
	EmploymentInactive EmploymentStatus = "Inactive"
)

func (s EmploymentStatus) Valid() bool {
	return s == EmploymentActive || s == EmploymentInactive
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentCard     PaymentMethod = "Card"
	PaymentEWallet  PaymentMethod = "EWallet"
	PaymentTransfer PaymentMethod = "Transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentEWallet, PaymentTransfer:
		return true
	}
	return false
}

type POStatus string

const (
	POCreated   POStatus = "Created"
	POOrdered   POStatus = "Ordered"
	POReceived  POStatus = "Received" // seeded only, no reducer reaches it
	POCancelled POStatus = "Cancelled"
)

func (s POStatus) Valid() bool {
	switch s {
	case POCreated, POOrdered, POReceived, POCancelled:
		return true
	}
	return false
}

type DistributionStatus string

const (
	DistributionPending   DistributionStatus = "Pending"
	DistributionInTransit DistributionStatus = "InTransit" // seeded only, no reducer reaches it
	DistributionDelivered DistributionStatus = "Delivered"
)

func (s DistributionStatus) Valid() bool {
	switch s {
	case DistributionPending, DistributionInTransit, DistributionDelivered:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountPercentage  DiscountType = "Percentage"
	DiscountFixedAmount DiscountType = "FixedAmount"
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixedAmount
}

type AssetStatus string

const (
	AssetInUse       AssetStatus = "InUse"
	AssetMaintenance AssetStatus = "Maintenance"
	AssetBroken      AssetStatus = "Broken"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetInUse, AssetMaintenance, AssetBroken:
		return true
	}
	return false
}

type CashFlowType string

const (
	CashInflow  CashFlowType = "Inflow"
	CashOutflow CashFlowType = "Outflow"
)

func (t CashFlowType) Valid() bool {
	return t == CashInflow || t == CashOutflow
}

type CandidateStatus string

const (
	CandidateApplied   CandidateStatus = "Applied"
	CandidateInterview CandidateStatus = "Interview"
	CandidateHired     CandidateStatus = "Hired"
	CandidateRejected  CandidateStatus = "Rejected"
)

func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateApplied, CandidateInterview, CandidateHired, CandidateRejected:
		return true
	}
	return false
}

type IngredientStatus string

const (
	IngredientActive   IngredientStatus = "Active"
	IngredientInactive IngredientStatus = "Inactive"
)

func (s IngredientStatus) Valid() bool {
	return s == IngredientActive || s == IngredientInactive
}

type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "Open"
	ShiftClosed ShiftStatus = "Closed" // seeded only, no reducer closes a shift
)

func (s ShiftStatus) Valid() bool {
	return s == ShiftOpen || s == ShiftClosed
}

type PromotionStatus string

const (
	PromotionDraft  PromotionStatus = "Draft"
	PromotionActive PromotionStatus = "Active"
	PromotionEnded  PromotionStatus = "Ended"
)

func (s PromotionStatus) Valid() bool {
	switch s {
	case PromotionDraft, PromotionActive, PromotionEnded:
		return true
	}
	return false
}
