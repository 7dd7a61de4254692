package catalog

import "github.com/ojharitesh/Launch-Navigator/internal/models"

func link(u string) *string { return &u }

// SeedTasks is the built-in task catalog used when the persisted catalog is
// empty and as the source for seeding it. IDs are stable slugs so seeding is
// idempotent.
var SeedTasks = []models.CatalogTask{
	// Generic tasks applying to every business.
	{
		ID:          "general-ein",
		Title:       "Get an Employer Identification Number (EIN)",
		Description: "Apply for a federal tax ID number from the IRS. This is like your business's Social Security number.",
		DetailedSteps: []string{
			"Go to the IRS website (irs.gov/ein)",
			"Click on 'Apply Online Now'",
			"Fill out the application form - you'll need your personal SSN and business details",
			"The EIN is issued immediately for online applications",
			"Write down or print your EIN - you'll need it for bank accounts and taxes",
		},
		State:             models.GeneralAxis,
		BusinessType:      models.GeneralAxis,
		CostEstimate:      "Free",
		CostDetails:       "The IRS does not charge for EIN applications",
		TimelineEstimate:  "Immediate",
		TimelineDetails:   "You get your EIN instantly when applying online",
		RequiredDocuments: []string{"Social Security Number (SSN)", "Business name", "Business address"},
		OfficialLink:      link("https://www.irs.gov/ein"),
		Category:          "tax",
		Order:             1,
	},
	{
		ID:          "general-structure",
		Title:       "Choose a Business Structure",
		Description: "Decide what type of business entity you want to form - Sole Proprietorship, LLC, Corporation, or Partnership.",
		DetailedSteps: []string{
			"Sole Proprietorship: Simplest form, no registration needed, but you have personal liability",
			"LLC (Limited Liability Company): Protects your personal assets, popular for small businesses",
			"Corporation: More complex, required for larger businesses seeking investors",
			"Partnership: If starting with partners, requires a partnership agreement",
			"Consult with an attorney or accountant if unsure - this is an important decision",
		},
		State:             models.GeneralAxis,
		BusinessType:      models.GeneralAxis,
		CostEstimate:      "$50 - $800",
		CostDetails:       "Costs vary by state: Sole Prop is free, LLC filing fees are $50-$800 depending on state",
		TimelineEstimate:  "1-4 weeks",
		TimelineDetails:   "Sole Prop is immediate, LLCs take 1-4 weeks to approve",
		RequiredDocuments: []string{"Business name", "Owner information", "Registered agent (for LLCs)"},
		Category:          "legal",
		Order:             2,
	},
	{
		ID:          "general-name",
		Title:       "Register Your Business Name",
		Description: "Register your business name with your state to operate legally.",
		DetailedSteps: []string{
			"If using your own name (John Smith), you may not need to register",
			"If using a fictional name (like 'Smith Consulting'), file a DBA (Doing Business As)",
			"Visit your county clerk's office or state Secretary of State website",
			"Fill out the Fictitious Business Name or DBA application",
			"Pay the filing fee (usually $10-$50)",
			"Publish a notice in a local newspaper (some states require this)",
		},
		State:             models.GeneralAxis,
		BusinessType:      models.GeneralAxis,
		CostEstimate:      "$25 - $100",
		CostDetails:       "County filing fees vary from $25-$100",
		TimelineEstimate:  "1-3 weeks",
		TimelineDetails:   "Processing takes 1-2 weeks, plus time for newspaper publication if required",
		RequiredDocuments: []string{"Business name", "Owner name and address", "Nature of business"},
		Category:          "registration",
		Order:             3,
	},
	{
		ID:          "general-bank-account",
		Title:       "Open a Business Bank Account",
		Description: "Open a separate bank account for your business to keep personal and business finances separate.",
		DetailedSteps: []string{
			"Bring your EIN confirmation letter to the bank",
			"Bring your business formation documents (LLC articles, etc.)",
			"Bring your driver's license or passport",
			"Some banks offer free business checking - shop around",
			"Consider getting a business debit card for expenses",
		},
		State:             models.GeneralAxis,
		BusinessType:      models.GeneralAxis,
		CostEstimate:      "$0 - $30",
		CostDetails:       "Many banks offer free business checking accounts",
		TimelineEstimate:  "1-2 days",
		TimelineDetails:   "Can often open online in minutes, or visit a branch",
		RequiredDocuments: []string{"EIN letter", "Business formation documents", "ID (driver's license)"},
		Category:          "operations",
		Order:             4,
	},
	{
		ID:          "general-insurance",
		Title:       "Get Business Insurance",
		Description: "Protect your business with the right insurance coverage.",
		DetailedSteps: []string{
			"General Liability Insurance: Essential for most businesses, covers injuries and property damage",
			"Professional Liability: If you provide advice or services",
			"Workers Compensation: Required if you have employees in most states",
			"Get quotes from multiple insurance companies",
			"Consider starting with a Business Owner's Policy (BOP) which bundles coverage",
		},
		State:             models.GeneralAxis,
		BusinessType:      models.GeneralAxis,
		CostEstimate:      "$500 - $3,000/year",
		CostDetails:       "Varies by business type, size, and coverage needs",
		TimelineEstimate:  "1-2 weeks",
		TimelineDetails:   "Can get quotes same day, policies typically start within a week",
		RequiredDocuments: []string{"Business information", "Estimated revenue", "Number of employees"},
		Category:          "insurance",
		Order:             5,
	},
	{
		ID:          "general-accounting",
		Title:       "Set Up Accounting System",
		Description: "Create a system to track your income, expenses, and taxes.",
		DetailedSteps: []string{
			"Choose accounting software (QuickBooks, Xero, Wave - Wave is free)",
			"Set up your business in the software",
			"Connect your bank account for automatic transaction downloads",
			"Learn the basics: income, expenses, invoices",
			"Set aside money for taxes (typically 25-30% of profits)",
			"Consider hiring a bookkeeper if overwhelmed",
		},
		State:             models.GeneralAxis,
		BusinessType:      models.GeneralAxis,
		CostEstimate:      "$0 - $50/month",
		CostDetails:       "Wave is free, QuickBooks starts at $25/month",
		TimelineEstimate:  "1-3 days",
		TimelineDetails:   "Can set up in a few hours, takes time to categorize past transactions",
		RequiredDocuments: []string{"Bank statements", "Receipts", "Previous tax returns"},
		Category:          "operations",
		Order:             6,
	},

	// Restaurant tasks.
	{
		ID:          "restaurant-food-permit",
		Title:       "Apply for a Food Service Permit",
		Description: "Get a health permit from your county to operate a restaurant.",
		DetailedSteps: []string{
			"Contact your county Environmental Health Department",
			"Schedule a pre-inspection of your kitchen space",
			"Make any required changes (ventilation, sinks, refrigeration, etc.)",
			"Pass the health inspection",
			"Receive your permit and post it prominently",
		},
		State:             models.GeneralAxis,
		BusinessType:      "restaurant",
		CostEstimate:      "$100 - $500",
		CostDetails:       "Varies by county, typically $100-$500 for the permit",
		TimelineEstimate:  "2-6 weeks",
		TimelineDetails:   "Pre-inspection takes 1-2 weeks, permit issued after passing inspection",
		RequiredDocuments: []string{"Floor plan", "Equipment list", "Food handler certifications"},
		Category:          "permits",
		Order:             10,
	},
	{
		ID:          "restaurant-liquor-license",
		Title:       "Get a Liquor License (if serving alcohol)",
		Description: "Apply for a license to serve alcoholic beverages.",
		DetailedSteps: []string{
			"Determine what type of license you need (beer & wine, or full liquor)",
			"Check if your location is in a restricted area",
			"Complete the application (this can be lengthy)",
			"Pay the application fee",
			"Attend a hearing (in some jurisdictions)",
			"The process can take 3-6 months, so apply early!",
		},
		State:             models.GeneralAxis,
		BusinessType:      "restaurant",
		CostEstimate:      "$1,000 - $15,000",
		CostDetails:       "Varies enormously by state and license type",
		TimelineEstimate:  "3-6 months",
		TimelineDetails:   "One of the longest permit processes - apply early!",
		RequiredDocuments: []string{"Application form", "Floor plan", "Background checks", "Proof of insurance"},
		Category:          "permits",
		Order:             11,
	},
	{
		ID:          "restaurant-sales-tax",
		Title:       "Register for Sales Tax",
		Description: "Register with your state to collect and remit sales tax on food sales.",
		DetailedSteps: []string{
			"Visit your state Department of Revenue website",
			"Register for a sales tax permit/account",
			"Learn your state's sales tax rate",
			"Understand what items are taxable (prepared food vs. grocery items differ)",
			"Set up a system to track and remit sales tax",
		},
		State:             models.GeneralAxis,
		BusinessType:      "restaurant",
		CostEstimate:      "Free",
		CostDetails:       "Registration is free",
		TimelineEstimate:  "1-2 weeks",
		TimelineDetails:   "Usually approved within a week",
		RequiredDocuments: []string{"Business information", "EIN", "Owner information"},
		Category:          "tax",
		Order:             12,
	},
	{
		ID:          "restaurant-food-handler",
		Title:       "Get a Food Handler's Permit",
		Description: "Ensure your staff has proper food safety certification.",
		DetailedSteps: []string{
			"Determine which employees need certification (varies by state)",
			"Complete an approved food safety course",
			"Pass the certification exam",
			"Display the certificate in your restaurant",
			"Renew as required (typically every 2-3 years)",
		},
		State:             models.GeneralAxis,
		BusinessType:      "restaurant",
		CostEstimate:      "$50 - $150/person",
		CostDetails:       "Course costs $50-$150 per person",
		TimelineEstimate:  "1-2 days",
		TimelineDetails:   "Most courses can be completed in a few hours",
		RequiredDocuments: []string{"Government-issued ID"},
		Category:          "compliance",
		Order:             13,
	},

	// Retail tasks.
	{
		ID:          "retail-sales-tax",
		Title:       "Register for Sales Tax (Retail)",
		Description: "Register with your state to collect sales tax on retail goods.",
		DetailedSteps: []string{
			"Visit your state Department of Revenue website",
			"Register for a sales tax permit",
			"Get your tax account number",
			"Learn the sales tax rate for your location",
			"Set up sales tax collection in your POS system",
		},
		State:             models.GeneralAxis,
		BusinessType:      "retail",
		CostEstimate:      "Free",
		CostDetails:       "Registration is free",
		TimelineEstimate:  "1-2 weeks",
		TimelineDetails:   "Usually approved within a week",
		RequiredDocuments: []string{"Business information", "EIN", "Owner information"},
		Category:          "tax",
		Order:             20,
	},
	{
		ID:          "retail-reseller-permit",
		Title:       "Get a Reseller's Permit",
		Description: "Register to buy goods for resale without paying sales tax.",
		DetailedSteps: []string{
			"Apply through your state Department of Revenue",
			"Provide your sales tax permit information",
			"Receive your reseller's permit number",
			"Present this permit to wholesalers when purchasing",
			"Track items you buy for resale to report later",
		},
		State:             models.GeneralAxis,
		BusinessType:      "retail",
		CostEstimate:      "Free",
		CostDetails:       "Usually free with your sales tax registration",
		TimelineEstimate:  "1-2 weeks",
		TimelineDetails:   "Often issued with your sales tax permit",
		RequiredDocuments: []string{"Sales tax permit", "Business license"},
		Category:          "tax",
		Order:             21,
	},

	// Construction tasks.
	{
		ID:          "construction-contractor-license",
		Title:       "Get a General Contractor License (if required)",
		Description: "Obtain a contractor's license if doing work over a certain value.",
		DetailedSteps: []string{
			"Check your state's licensing requirements (amounts vary by state)",
			"Complete required education or experience hours",
			"Pass the contractor exam",
			"Get liability insurance (required in most states)",
			"Provide a contractor bond (amounts vary)",
			"Renew your license annually",
		},
		State:             models.GeneralAxis,
		BusinessType:      "construction",
		CostEstimate:      "$300 - $1,000",
		CostDetails:       "Exam fees, insurance, and bond costs vary widely",
		TimelineEstimate:  "4-8 weeks",
		TimelineDetails:   "Process takes 1-2 months after passing exam",
		RequiredDocuments: []string{"Education transcripts", "Work experience proof", "Insurance certificate", "Bond"},
		Category:          "permits",
		Order:             30,
	},
	{
		ID:          "construction-liability-insurance",
		Title:       "Get Contractor Liability Insurance",
		Description: "Protect your business with proper insurance coverage.",
		DetailedSteps: []string{
			"General Liability: Covers property damage and injuries",
			"Workers Compensation: Required if you have employees",
			"Commercial Auto: For company vehicles",
			"Get quotes from multiple providers",
			"Keep certificates of insurance for your records",
		},
		State:             models.GeneralAxis,
		BusinessType:      "construction",
		CostEstimate:      "$2,000 - $10,000/year",
		CostDetails:       "Varies by number of employees and work type",
		TimelineEstimate:  "1-2 weeks",
		TimelineDetails:   "Can get quotes same day",
		RequiredDocuments: []string{"Business information", "Estimated payroll", "List of services"},
		Category:          "insurance",
		Order:             31,
	},

	// Technology / consulting tasks.
	{
		ID:          "technology-website",
		Title:       "Create a Professional Website",
		Description: "Build a website to showcase your services and attract customers.",
		DetailedSteps: []string{
			"Choose a domain name (yourbusiness.com)",
			"Use a website builder (Wix, Squarespace, WordPress)",
			"Choose a professional template",
			"Add essential pages: Home, About, Services, Contact",
			"Include clear calls to action",
			"Make it mobile-friendly",
			"Add customer testimonials if available",
		},
		State:             models.GeneralAxis,
		BusinessType:      "technology",
		CostEstimate:      "$0 - $500",
		CostDetails:       "Wix/Squarespace: $16-45/month, WordPress is free but needs hosting ($5-25/month)",
		TimelineEstimate:  "1-4 weeks",
		TimelineDetails:   "Can be done in a few days with a website builder",
		RequiredDocuments: []string{"Domain name", "Content (text, images)"},
		Category:          "operations",
		Order:             40,
	},
	{
		ID:          "technology-contracts",
		Title:       "Create Service Contracts/Agreements",
		Description: "Have legal agreements in place for your clients.",
		DetailedSteps: []string{
			"Define your services clearly",
			"Outline payment terms (when, how much)",
			"Include cancellation/refund policies",
			"Add liability limitations",
			"Have an attorney review if possible",
			"Use contracts for every client",
		},
		State:             models.GeneralAxis,
		BusinessType:      "technology",
		CostEstimate:      "$0 - $500",
		CostDetails:       "Can use templates for free, attorney review costs more",
		TimelineEstimate:  "1-2 weeks",
		TimelineDetails:   "Create once, use repeatedly",
		RequiredDocuments: []string{"Service descriptions", "Business terms"},
		Category:          "legal",
		Order:             41,
	},

	// State-specific tasks.
	{
		ID:          "ca-restaurant-cdtfa",
		Title:       "Register with California CDTFA",
		Description: "Register with California's tax agency to collect sales tax.",
		DetailedSteps: []string{
			"Go to cdtfa.ca.gov",
			"Click 'Register a New Business Account'",
			"Create an account",
			"Follow the prompts to register for a seller's permit",
			"You'll receive a permit number and filing frequency",
			"File returns on time (monthly, quarterly, or annually)",
		},
		State:             "CA",
		BusinessType:      "restaurant",
		CostEstimate:      "Free",
		CostDetails:       "No charge for registration",
		TimelineEstimate:  "2-4 weeks",
		TimelineDetails:   "Can take 2-4 weeks for paper applications, faster online",
		RequiredDocuments: []string{"Business info", "SSN or EIN", "Start date", "Estimated sales"},
		OfficialLink:      link("https://www.cdtfa.ca.gov/"),
		Category:          "tax",
		Order:             100,
	},
	{
		ID:          "tx-restaurant-comptroller",
		Title:       "Register with Texas Comptroller",
		Description: "Register with Texas to collect sales tax.",
		DetailedSteps: []string{
			"Go to comptroller.texas.gov",
			"Register for a sales tax permit",
			"Set up your account",
			"Learn the Texas sales tax rate (6.25% + local taxes)",
			"File returns as assigned (monthly, quarterly, or annually)",
		},
		State:             "TX",
		BusinessType:      "restaurant",
		CostEstimate:      "Free",
		CostDetails:       "No charge for registration",
		TimelineEstimate:  "2-4 weeks",
		TimelineDetails:   "Usually approved within 2-4 weeks",
		RequiredDocuments: []string{"Business info", "EIN", "Owner information"},
		OfficialLink:      link("https://comptroller.texas.gov/taxes/sales"),
		Category:          "tax",
		Order:             100,
	},
	{
		ID:          "ny-restaurant-tax",
		Title:       "Register with NY Tax Department",
		Description: "Register with New York to collect sales tax.",
		DetailedSteps: []string{
			"Go to tax.ny.gov",
			"Create an NY.gov account",
			"Register for sales tax",
			"Get your Certificate of Authority",
			"Post it in your restaurant",
			"File sales tax returns (monthly for most restaurants)",
		},
		State:             "NY",
		BusinessType:      "restaurant",
		CostEstimate:      "Free",
		CostDetails:       "No charge for registration",
		TimelineEstimate:  "3-6 weeks",
		TimelineDetails:   "Can take several weeks in NY",
		RequiredDocuments: []string{"Business info", "EIN", "Owner SSN"},
		OfficialLink:      link("https://www.tax.ny.gov/"),
		Category:          "tax",
		Order:             100,
	},
	{
		ID:          "fl-restaurant-revenue",
		Title:       "Register with Florida Department of Revenue",
		Description: "Register with Florida to collect sales tax.",
		DetailedSteps: []string{
			"Go to floridarevenue.com",
			"Register for a sales tax permit",
			"Complete the application",
			"Receive your certificate",
			"File returns (typically monthly for restaurants)",
		},
		State:             "FL",
		BusinessType:      "restaurant",
		CostEstimate:      "Free",
		CostDetails:       "No charge for registration",
		TimelineEstimate:  "2-4 weeks",
		TimelineDetails:   "Usually approved within a month",
		RequiredDocuments: []string{"Business info", "EIN", "Owner information"},
		OfficialLink:      link("https://floridarevenue.com/taxes/sales"),
		Category:          "tax",
		Order:             100,
	},
}
