package hub

// DefaultSpecs fixes the policy and field table for every resource the API
// serves. Milk entries and messages are high-frequency entry screens, so
// they take the optimistic path; everything else reloads after mutation.
func DefaultSpecs() []Spec {
	return []Spec{
		{
			Resource: "farmers",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "cattle_count", UI: "cattleCount"},
				{API: "daily_capacity", UI: "dailyCapacity"},
				{API: "join_date", UI: "joinDate"},
				{API: "bank_account", UI: "bankAccount"},
			},
		},
		{
			Resource: "suppliers",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "contact_person", UI: "contactPerson"},
				{API: "supply_type", UI: "supplyType"},
			},
		},
		{
			Resource: "milk-entries",
			Policy:   PolicyOptimistic,
			Fields: []FieldMap{
				{API: "farmer_id", UI: "farmerId"},
				{API: "collection_date", UI: "collectionDate"},
				{API: "quantity_liters", UI: "quantityLiters"},
				{API: "fat_percent", UI: "fatPercent"},
				{API: "snf_percent", UI: "snfPercent"},
				{API: "rate_per_liter", UI: "ratePerLiter"},
				{API: "total_amount", UI: "totalAmount"},
				{API: "quality_grade", UI: "qualityGrade"},
			},
		},
		{
			Resource: "quality-tests",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "farmer_id", UI: "farmerId"},
				{API: "test_date", UI: "testDate"},
				{API: "test_type", UI: "testType"},
				{API: "fat_percent", UI: "fatPercent"},
				{API: "snf_percent", UI: "snfPercent"},
				{API: "bacterial_count", UI: "bacterialCount"},
			},
		},
		{
			Resource: "deliveries",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "vehicle_number", UI: "vehicleNumber"},
				{API: "driver_name", UI: "driverName"},
				{API: "departure_time", UI: "departureTime"},
				{API: "arrival_time", UI: "arrivalTime"},
				{API: "quantity_liters", UI: "quantityLiters"},
			},
		},
		{
			Resource: "payments",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "farmer_id", UI: "farmerId"},
				{API: "period_start", UI: "periodStart"},
				{API: "period_end", UI: "periodEnd"},
				{API: "payment_date", UI: "paymentDate"},
			},
		},
		{
			Resource: "bills",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "supplier_id", UI: "supplierId"},
				{API: "bill_date", UI: "billDate"},
				{API: "due_date", UI: "dueDate"},
			},
		},
		{
			Resource: "compliance-records",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "record_date", UI: "recordDate"},
			},
		},
		{
			Resource: "certifications",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "issuing_body", UI: "issuingBody"},
				{API: "issue_date", UI: "issueDate"},
				{API: "expiry_date", UI: "expiryDate"},
			},
		},
		{
			Resource: "audits",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "audit_date", UI: "auditDate"},
			},
		},
		{
			Resource: "documents",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "file_name", UI: "fileName"},
				{API: "related_entity", UI: "relatedEntity"},
				{API: "uploaded_at", UI: "uploadedAt"},
			},
		},
		{
			Resource: "messages",
			Policy:   PolicyOptimistic,
			Fields: []FieldMap{
				{API: "farmer_id", UI: "farmerId"},
			},
		},
		{
			Resource: "group-messages",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "group_name", UI: "groupName"},
				{API: "recipients_count", UI: "recipientsCount"},
			},
		},
		{
			Resource: "announcements",
			Policy:   PolicyReload,
			Fields: []FieldMap{
				{API: "publish_date", UI: "publishDate"},
				{API: "expiry_date", UI: "expiryDate"},
			},
		},
	}
}
