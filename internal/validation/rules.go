package validation

import "regexp"

// ID and contact formats. These mirror the formats the portal forms enforce;
// keeping them here means add/edit forms and the API check the same thing.
var (
	reFarmerID   = regexp.MustCompile(`^FARM[0-9]{4}$`)
	reSupplierID = regexp.MustCompile(`^SUP[0-9]{4}$`)
	reDeliveryID = regexp.MustCompile(`^DEL[0-9]{4}$`)
	reBillID     = regexp.MustCompile(`^BILL[0-9]{4}$`)
	reCertID     = regexp.MustCompile(`^CERT[0-9]{4}$`)
	reMessageID  = regexp.MustCompile(`^MSG[0-9]{3}$`)
	reGroupMsgID = regexp.MustCompile(`^GMSG[0-9]{3}$`)

	// Any prefixed member-style reference (FARM0001, SUP0002, ...).
	reMemberRef = regexp.MustCompile(`^[A-Za-z]+[0-9]{4}$`)

	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 -]{8,14}$`)
	reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func f(v float64) *float64 { return &v }

var priorityEnum = []string{"Low", "Medium", "High"}

var Farmers = RuleSet{Resource: "farmers", Rules: []Rule{
	{Field: "id", Required: true, Pattern: reFarmerID, PatternMsg: "id must match FARM followed by 4 digits"},
	{Field: "name", Required: true, MaxLen: 100},
	{Field: "phone", Required: true, Pattern: rePhone, PatternMsg: "phone must be a valid phone number"},
	{Field: "email", Pattern: reEmail, PatternMsg: "email must be a valid email address"},
	{Field: "village", Required: true, MaxLen: 100},
	{Field: "cattle_count", Min: f(0), Max: f(10000)},
	{Field: "daily_capacity", Min: f(0), Max: f(100000)},
	{Field: "join_date", Required: true, DateLayout: DateOnly},
	{Field: "status", Enum: []string{"Active", "Inactive", "Suspended"}},
}}

var Suppliers = RuleSet{Resource: "suppliers", Rules: []Rule{
	{Field: "id", Required: true, Pattern: reSupplierID, PatternMsg: "id must match SUP followed by 4 digits"},
	{Field: "name", Required: true, MaxLen: 100},
	{Field: "contact_person", Required: true, MaxLen: 100},
	{Field: "phone", Required: true, Pattern: rePhone, PatternMsg: "phone must be a valid phone number"},
	{Field: "email", Pattern: reEmail, PatternMsg: "email must be a valid email address"},
	{Field: "address", Required: true, MaxLen: 200},
	{Field: "supply_type", Required: true, Enum: []string{"Feed", "Equipment", "Veterinary", "Packaging"}},
	{Field: "status", Enum: []string{"Active", "Inactive"}},
}}

var MilkEntries = RuleSet{Resource: "milk-entries", Rules: []Rule{
	{Field: "farmer_id", Required: true, Pattern: reFarmerID, PatternMsg: "farmer_id must match FARM followed by 4 digits"},
	{Field: "collection_date", Required: true, DateLayout: DateOnly},
	{Field: "shift", Required: true, Enum: []string{"Morning", "Evening"}},
	{Field: "quantity_liters", Required: true, Min: f(0.1), Max: f(10000)},
	{Field: "fat_percent", Required: true, Min: f(0), Max: f(15)},
	{Field: "snf_percent", Required: true, Min: f(0), Max: f(15)},
	{Field: "rate_per_liter", Required: true, Min: f(0)},
	{Field: "total_amount", Min: f(0)},
	{Field: "quality_grade", Enum: []string{"A", "B", "C"}},
	{Field: "status", Enum: []string{"Recorded", "Verified", "Rejected"}},
}}

var QualityTests = RuleSet{Resource: "quality-tests", Rules: []Rule{
	{Field: "farmer_id", Required: true, Pattern: reFarmerID, PatternMsg: "farmer_id must match FARM followed by 4 digits"},
	{Field: "test_date", Required: true, DateLayout: DateOnly},
	{Field: "test_type", Required: true, Enum: []string{"Adulteration", "Bacterial", "Composition"}},
	{Field: "fat_percent", Min: f(0), Max: f(15)},
	{Field: "snf_percent", Min: f(0), Max: f(15)},
	{Field: "bacterial_count", Min: f(0)},
	{Field: "result", Required: true, Enum: []string{"Pass", "Fail"}},
	{Field: "notes", MaxLen: 500},
}}

var Deliveries = RuleSet{Resource: "deliveries", Rules: []Rule{
	{Field: "id", Required: true, Pattern: reDeliveryID, PatternMsg: "id must match DEL followed by 4 digits"},
	{Field: "route", Required: true, MaxLen: 100},
	{Field: "vehicle_number", Required: true, MaxLen: 20},
	{Field: "driver_name", Required: true, MaxLen: 100},
	{Field: "departure_time", Required: true, DateLayout: DateTime},
	{Field: "arrival_time", DateLayout: DateTime},
	{Field: "quantity_liters", Required: true, Min: f(0.1), Max: f(50000)},
	{Field: "destination", Required: true, MaxLen: 100},
	{Field: "notes", MaxLen: 500},
	{Field: "status", Enum: []string{"Scheduled", "InTransit", "Delivered", "Cancelled"}},
}}

var Payments = RuleSet{Resource: "payments", Rules: []Rule{
	{Field: "farmer_id", Required: true, Pattern: reFarmerID, PatternMsg: "farmer_id must match FARM followed by 4 digits"},
	{Field: "period_start", Required: true, DateLayout: DateOnly},
	{Field: "period_end", Required: true, DateLayout: DateOnly},
	{Field: "amount", Required: true, Min: f(0)},
	{Field: "payment_date", DateLayout: DateOnly},
	{Field: "method", Required: true, Enum: []string{"Bank", "Cash", "UPI"}},
	{Field: "status", Enum: []string{"Pending", "Paid", "Failed"}},
}}

var Bills = RuleSet{Resource: "bills", Rules: []Rule{
	{Field: "id", Required: true, Pattern: reBillID, PatternMsg: "id must match BILL followed by 4 digits"},
	{Field: "supplier_id", Required: true, Pattern: reSupplierID, PatternMsg: "supplier_id must match SUP followed by 4 digits"},
	{Field: "bill_date", Required: true, DateLayout: DateOnly},
	{Field: "due_date", Required: true, DateLayout: DateOnly},
	{Field: "amount", Required: true, Min: f(0)},
	{Field: "category", Required: true, Enum: []string{"Feed", "Equipment", "Veterinary", "Packaging", "Other"}},
	{Field: "status", Enum: []string{"Unpaid", "Paid", "Overdue"}},
}}

var ComplianceRecords = RuleSet{Resource: "compliance-records", Rules: []Rule{
	{Field: "title", Required: true, MaxLen: 200},
	{Field: "category", Required: true, Enum: []string{"FoodSafety", "Environmental", "Labor", "Tax"}},
	{Field: "authority", Required: true, MaxLen: 100},
	{Field: "record_date", Required: true, DateLayout: DateOnly},
	{Field: "status", Enum: []string{"Compliant", "NonCompliant", "Pending"}},
	{Field: "notes", MaxLen: 1000},
}}

var Certifications = RuleSet{Resource: "certifications", Rules: []Rule{
	{Field: "id", Required: true, Pattern: reCertID, PatternMsg: "id must match CERT followed by 4 digits"},
	{Field: "name", Required: true, MaxLen: 100},
	{Field: "issuing_body", Required: true, MaxLen: 100},
	{Field: "issue_date", Required: true, DateLayout: DateOnly},
	{Field: "expiry_date", Required: true, DateLayout: DateOnly},
	{Field: "status", Enum: []string{"Valid", "Expired", "Suspended"}},
}}

var Audits = RuleSet{Resource: "audits", Rules: []Rule{
	{Field: "audit_date", Required: true, DateLayout: DateOnly},
	{Field: "auditor", Required: true, MaxLen: 100},
	{Field: "scope", Required: true, MaxLen: 200},
	{Field: "findings", MaxLen: 1000},
	{Field: "rating", Enum: []string{"A", "B", "C"}},
	{Field: "status", Enum: []string{"Planned", "InProgress", "Closed"}},
}}

var Documents = RuleSet{Resource: "documents", Rules: []Rule{
	{Field: "title", Required: true, MaxLen: 200},
	{Field: "category", Required: true, Enum: []string{"License", "Certificate", "Report", "Contract", "Other"}},
	{Field: "file_name", Required: true, MaxLen: 200},
	{Field: "related_entity", Pattern: reMemberRef, PatternMsg: "related_entity must be a member reference like FARM0001"},
}}

var Messages = RuleSet{Resource: "messages", Rules: []Rule{
	{Field: "id", Required: true, Pattern: reMessageID, PatternMsg: "id must match MSG followed by 3 digits"},
	{Field: "farmer_id", Required: true, Pattern: reMemberRef, PatternMsg: "farmer_id must be a member reference like FARM0001"},
	{Field: "subject", Required: true, MaxLen: 200},
	{Field: "message", Required: true, MaxLen: 2000},
	{Field: "timestamp", Required: true, DateLayout: DateTime},
	{Field: "status", Enum: []string{"Sent", "Delivered", "Read"}},
	{Field: "priority", Enum: priorityEnum},
}}

var GroupMessages = RuleSet{Resource: "group-messages", Rules: []Rule{
	{Field: "id", Required: true, Pattern: reGroupMsgID, PatternMsg: "id must match GMSG followed by 3 digits"},
	{Field: "group_name", Required: true, MaxLen: 100},
	{Field: "subject", Required: true, MaxLen: 200},
	{Field: "message", Required: true, MaxLen: 2000},
	{Field: "timestamp", Required: true, DateLayout: DateTime},
	{Field: "recipients_count", Min: f(0)},
	{Field: "status", Enum: []string{"Sent", "Delivered"}},
	{Field: "priority", Enum: priorityEnum},
}}

var Announcements = RuleSet{Resource: "announcements", Rules: []Rule{
	{Field: "title", Required: true, MaxLen: 200},
	{Field: "content", Required: true, MaxLen: 5000},
	{Field: "category", Required: true, Enum: []string{"General", "Price", "Schedule", "Event"}},
	{Field: "publish_date", Required: true, DateLayout: DateOnly},
	{Field: "expiry_date", DateLayout: DateOnly},
	{Field: "priority", Enum: priorityEnum},
	{Field: "status", Enum: []string{"Draft", "Published", "Archived"}},
}}

// ByResource lets callers that address resources by name (pkg/hub) find the
// matching rule set.
var ByResource = map[string]RuleSet{
	Farmers.Resource:           Farmers,
	Suppliers.Resource:         Suppliers,
	MilkEntries.Resource:       MilkEntries,
	QualityTests.Resource:      QualityTests,
	Deliveries.Resource:        Deliveries,
	Payments.Resource:          Payments,
	Bills.Resource:             Bills,
	ComplianceRecords.Resource: ComplianceRecords,
	Certifications.Resource:    Certifications,
	Audits.Resource:            Audits,
	Documents.Resource:         Documents,
	Messages.Resource:          Messages,
	GroupMessages.Resource:     GroupMessages,
	Announcements.Resource:     Announcements,
}
