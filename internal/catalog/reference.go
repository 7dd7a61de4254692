package catalog

// USState is a code/name pair for the state dropdown.
type USState struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// BusinessType is a value/label pair for the business-type dropdown.
type BusinessType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// USStates lists the fifty US states.
var USStates = []USState{
	{Code: "AL", Name: "Alabama"},
	{Code: "AK", Name: "Alaska"},
	{Code: "AZ", Name: "Arizona"},
	{Code: "AR", Name: "Arkansas"},
	{Code: "CA", Name: "California"},
	{Code: "CO", Name: "Colorado"},
	{Code: "CT", Name: "Connecticut"},
	{Code: "DE", Name: "Delaware"},
	{Code: "FL", Name: "Florida"},
	{Code: "GA", Name: "Georgia"},
	{Code: "HI", Name: "Hawaii"},
	{Code: "ID", Name: "Idaho"},
	{Code: "IL", Name: "Illinois"},
	{Code: "IN", Name: "Indiana"},
	{Code: "IA", Name: "Iowa"},
	{Code: "KS", Name: "Kansas"},
	{Code: "KY", Name: "Kentucky"},
	{Code: "LA", Name: "Louisiana"},
	{Code: "ME", Name: "Maine"},
	{Code: "MD", Name: "Maryland"},
	{Code: "MA", Name: "Massachusetts"},
	{Code: "MI", Name: "Michigan"},
	{Code: "MN", Name: "Minnesota"},
	{Code: "MS", Name: "Mississippi"},
	{Code: "MO", Name: "Missouri"},
	{Code: "MT", Name: "Montana"},
	{Code: "NE", Name: "Nebraska"},
	{Code: "NV", Name: "Nevada"},
	{Code: "NH", Name: "New Hampshire"},
	{Code: "NJ", Name: "New Jersey"},
	{Code: "NM", Name: "New Mexico"},
	{Code: "NY", Name: "New York"},
	{Code: "NC", Name: "North Carolina"},
	{Code: "ND", Name: "North Dakota"},
	{Code: "OH", Name: "Ohio"},
	{Code: "OK", Name: "Oklahoma"},
	{Code: "OR", Name: "Oregon"},
	{Code: "PA", Name: "Pennsylvania"},
	{Code: "RI", Name: "Rhode Island"},
	{Code: "SC", Name: "South Carolina"},
	{Code: "SD", Name: "South Dakota"},
	{Code: "TN", Name: "Tennessee"},
	{Code: "TX", Name: "Texas"},
	{Code: "UT", Name: "Utah"},
	{Code: "VT", Name: "Vermont"},
	{Code: "VA", Name: "Virginia"},
	{Code: "WA", Name: "Washington"},
	{Code: "WV", Name: "West Virginia"},
	{Code: "WI", Name: "Wisconsin"},
	{Code: "WY", Name: "Wyoming"},
}

// BusinessTypes lists the supported business categories.
var BusinessTypes = []BusinessType{
	{Value: "restaurant", Label: "Restaurant"},
	{Value: "retail", Label: "Retail Store"},
	{Value: "construction", Label: "Construction"},
	{Value: "healthcare", Label: "Healthcare"},
	{Value: "manufacturing", Label: "Manufacturing"},
	{Value: "technology", Label: "Technology"},
	{Value: "consulting", Label: "Consulting"},
	{Value: "fitness", Label: "Fitness/Gym"},
	{Value: "salon", Label: "Salon/Spa"},
	{Value: "auto_repair", Label: "Auto Repair"},
	{Value: "general", Label: "General Business"},
}

// IsValidState reports whether code is one of the fifty state codes.
func IsValidState(code string) bool {
	for _, s := range USStates {
		if s.Code == code {
			return true
		}
	}
	return false
}

// StateCode resolves a state name or code to its two-letter code. It returns
// the input unchanged when no state matches, leaving validation to the
// caller.
func StateCode(nameOrCode string) string {
	for _, s := range USStates {
		if s.Code == nameOrCode || s.Name == nameOrCode {
			return s.Code
		}
	}
	return nameOrCode
}

// IsValidBusinessType reports whether value is a supported business type.
func IsValidBusinessType(value string) bool {
	for _, bt := range BusinessTypes {
		if bt.Value == value {
			return true
		}
	}
	return false
}
