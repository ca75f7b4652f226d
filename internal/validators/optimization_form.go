package validators

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOrderCost targets the cost of placing one order (S).
	FieldOrderCost = "order_cost"

	// FieldHoldingCost targets the yearly cost of holding one unit (H).
	FieldHoldingCost = "holding_cost"

	// FieldLeadTime targets the supplier lead time in days.
	FieldLeadTime = "lead_time"

	// FieldServiceLevel targets the service level entered in percent.
	FieldServiceLevel = "service_level"

	// FieldFile targets the path of the historical demand CSV.
	FieldFile = "file"

	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldFullName        = "full_name"
)

// Bounds accepted by the backend for the ROP calculation.
const (
	MinLeadTime     = 1
	MaxLeadTime     = 365
	MinServiceLevel = 50.0
	MaxServiceLevel = 99.9

	// MinPasswordLength matches the registration page of the web client.
	MinPasswordLength = 6

	csvExtension = ".csv"
)
