package salesforce

// Web-to-Lead posts custom fields by their generated field codes, not by
// API name. These match the org's custom Lead fields (Project__c,
// Message__c, Sample_Request__c, Products__c, Quantity__c, Location__c,
// Timestamp__c).
const (
	fieldProject       = "00NWS000006el81"
	fieldMessage       = "00N4I00000EzMsn"
	fieldSampleRequest = "00N4I00000EzMt2"
	fieldProducts      = "00N4I00000EzMtH"
	fieldQuantity      = "00N4I00000EzMtW"
	fieldLocation      = "00N4I00000EzMtl"
	fieldTimestamp     = "00N4I00000EzMu0"
)
