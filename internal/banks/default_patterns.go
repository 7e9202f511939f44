package banks

// Shared rule fragments. A transaction amount is always adjacent to its verb
// and a balance amount always follows a Bal/Balance keyword, so the two
// captures are anchored to different words.
const (
	currency = `(?:INR|Rs\.?|₹)\s*`
	amount   = `(?P<amount>[\d,]+(?:\.\d+)?)`
	account  = `A/?c\s+(?:no\.?\s*)?\S+`

	// clause is the filler between a verb and its counterparty. It stays
	// inside one sentence so footers such as "SMS BLOCK 1234 to 9199..." are
	// never read as the merchant.
	clause = `[^.?!]*?`

	merchantName = `(?P<merchant>[A-Za-z0-9][A-Za-z0-9&'._\-]*?(?:\s+[A-Za-z0-9&'._\-]+?)*?)`
	upiHandle    = `(?:@[A-Za-z0-9.\-]+)?`
	merchantStop = `(?:\s+on\b|\s+Avl\b|\s+Ref\b|\s+via\b|\s+UPI\b|\s*\(|\.\s|\.?$|[,;])`
	merchant     = merchantName + upiHandle + merchantStop
)

// DefaultBalancePatterns are used by sets that declare no balance rule.
func DefaultBalancePatterns() []string {
	return []string{
		`\bBal(?:ance)?\b\.?\s*(?:is\s+)?:?\s*` + currency + amount,
	}
}

// DefaultAccountPatterns are used by sets that declare no account rule.
func DefaultAccountPatterns() []string {
	return []string{
		`\b(?:A/c|Acct|Account|AC|Card)\b(?:\s+no\.?)?\s*(?:ending\s+(?:with\s+)?)?[X*]*(?P<account>\d{4,})`,
	}
}

// DefaultPriority is the detector order for the built-in sets.
func DefaultPriority() []BankID {
	return []BankID{HDFC, SBI, Axis, Kotak, ICICI, UPI}
}

// DefaultPatternSets returns the built-in pattern table in priority order.
func DefaultPatternSets() []BankPatternSet {
	return []BankPatternSet{
		{
			ID:     HDFC,
			Name:   "HDFC Bank",
			Tokens: []string{"hdfc"},
			Debit: []string{
				// INR 1,250.00 has been debited from A/c XX1234 for purchase at AMAZON on 25-Feb-26.
				currency + amount + `\s+(?:has\s+been\s+|is\s+|was\s+)?debited\s+from\s+(?:your\s+)?(?:HDFC\s+Bank\s+)?` + account +
					`(?:\s+(?:for|towards|to)\s+(?:purchase\s+)?(?:at\s+)?(?:VPA\s+)?(?:UPI/\w+/)?` + merchant + `)?`,
				// You've spent Rs.2,200 On HDFC Bank CREDIT Card xx4321 At DECATHLON On 2026-03-10
				`(?:You've\s+|You\s+have\s+)?spent\s+` + currency + amount + `\s+on\s+(?:your\s+)?HDFC\s+Bank\s+(?:\w+\s+)?Card\s+\S+` +
					`(?:\s+at\s+` + merchant + `)?`,
			},
			Credit: []string{
				currency + amount + `\s+(?:has\s+been\s+|is\s+|was\s+)?credited\s+to\s+(?:your\s+)?(?:HDFC\s+Bank\s+)?` + account +
					`(?:` + clause + `\bfrom\s+(?:VPA\s+)?` + merchant + `)?`,
				`(?:Money\s+)?received\s+` + currency + amount + `\s+in\s+(?:your\s+)?(?:HDFC\s+Bank\s+)?` + account +
					`(?:\s+from\s+(?:VPA\s+)?` + merchant + `)?`,
			},
		},
		{
			ID:     SBI,
			Name:   "State Bank of India",
			Tokens: []string{"sbi", "state bank"},
			Debit: []string{
				// Rs.500 debited from A/c XX9012 for UPI/P2M/SWIGGY on 25-Feb.
				currency + amount + `\s+(?:has\s+been\s+)?debited\s+from\s+(?:your\s+)?` + account +
					`(?:\s+(?:for|to|towards)\s+(?:VPA\s+)?(?:UPI/\w+/)?` + merchant + `)?`,
				// your A/c X4521 has a debit by transfer of Rs 1,000.00 on 10Mar26 transfer to RAHUL KUMAR
				`A/c\s+\S+\s+(?:has\s+been\s+debited|is\s+debited|debited|has\s+a\s+debit)\s+(?:by|with|for)\s+(?:transfer\s+of\s+)?` +
					currency + amount + `(?:` + clause + `\b(?:transfer\s+to|to|at)\s+` + merchant + `)?`,
			},
			Credit: []string{
				`A/c\s+\S+\s+(?:has\s+been\s+|is\s+)?credited\s+(?:by|with)\s+` + currency + amount +
					`(?:` + clause + `\bfrom\s+(?:VPA\s+)?` + merchant + `)?`,
				currency + amount + `\s+(?:has\s+been\s+)?credited\s+to\s+(?:your\s+)?` + account +
					`(?:` + clause + `\bfrom\s+(?:VPA\s+)?` + merchant + `)?`,
			},
		},
		{
			ID:     Axis,
			Name:   "Axis Bank",
			Tokens: []string{"axis"},
			Debit: []string{
				// INR 2,340.00 debited from A/c no. XX5678 on 12-03-26 at BIGBASKET.
				currency + amount + `\s+(?:has\s+been\s+)?debited\s+from\s+(?:your\s+)?` + account +
					`(?:` + clause + `\b(?:at|to)\s+(?:VPA\s+)?` + merchant + `)?`,
				`Spent\s+` + currency + amount + `\s+(?:on|using)\s+(?:your\s+)?Axis\s+Bank\s+(?:\w+\s+)?Card\s+\S+` +
					`(?:` + clause + `\bat\s+` + merchant + `)?`,
			},
			Credit: []string{
				currency + amount + `\s+(?:has\s+been\s+)?credited\s+to\s+(?:your\s+)?` + account +
					`(?:` + clause + `\bfrom\s+(?:VPA\s+)?` + merchant + `)?`,
			},
		},
		{
			ID:     Kotak,
			Name:   "Kotak Mahindra Bank",
			Tokens: []string{"kotak"},
			Debit: []string{
				// Sent Rs.899.00 from Kotak Bank AC X3456 to netflix@icici on 14-03-26.
				`Sent\s+` + currency + amount + `\s+from\s+Kotak\s+Bank\s+` + account +
					`(?:\s+to\s+(?:VPA\s+)?` + merchant + `)?`,
				currency + amount + `\s+(?:has\s+been\s+|is\s+)?debited\s+from\s+(?:your\s+)?(?:Kotak\s+Bank\s+)?` + account +
					`(?:` + clause + `\b(?:at|to|towards)\s+(?:VPA\s+)?` + merchant + `)?`,
			},
			Credit: []string{
				`Received\s+` + currency + amount + `\s+in\s+(?:your\s+)?Kotak\s+Bank\s+` + account +
					`(?:\s+from\s+(?:VPA\s+)?` + merchant + `)?`,
				currency + amount + `\s+(?:has\s+been\s+|is\s+)?credited\s+to\s+(?:your\s+)?(?:Kotak\s+Bank\s+)?` + account +
					`(?:` + clause + `\bfrom\s+(?:VPA\s+)?` + merchant + `)?`,
			},
		},
		{
			ID:     ICICI,
			Name:   "ICICI Bank",
			Tokens: []string{"icici"},
			Debit: []string{
				// INR 965.00 spent on ICICI Bank Card XX9876 on 07-Mar-26 at SWIGGY.
				currency + amount + `\s+spent\s+(?:using|on)\s+ICICI\s+Bank\s+Card\s+\S+` +
					`(?:` + clause + `\bat\s+` + merchant + `)?`,
				// ICICI Bank Acct XX1234 debited for Rs 1,499.00 on 16-Mar-26; AIRTEL credited.
				`Acc?t\s+\S+\s+(?:is\s+|has\s+been\s+)?debited\s+(?:for|with|by)\s+` + currency + amount +
					`(?:\s+on\s+[\w-]+[;,]?\s+` + merchantName + upiHandle + `\s+credited)?`,
			},
			Credit: []string{
				`Acc?t\s+\S+\s+(?:is\s+|has\s+been\s+)?credited\s+(?:with|by)\s+` + currency + amount +
					`(?:` + clause + `\bfrom\s+(?:VPA\s+)?` + merchant + `)?`,
			},
		},
		{
			ID:       UPI,
			Name:     "UPI",
			Tokens:   []string{"upi", "@"},
			Fallback: true,
			Debit: []string{
				// Rs.150 debited from Paytm Wallet to ZOMATO@paytm.
				currency + amount + `\s+(?:has\s+been\s+)?debited\s+from\s+` + clause + `\s+to\s+(?:VPA\s+)?` + merchant,
				`(?:Paid|Sent)\s+` + currency + amount + `\s+(?:to|at)\s+(?:VPA\s+)?` + merchant,
			},
			Credit: []string{
				`Received\s+` + currency + amount + `\s+from\s+(?:VPA\s+)?` + merchant,
				currency + amount + `\s+(?:has\s+been\s+)?(?:credited|received)\s+(?:to|in)\s+` + clause + `\s+from\s+(?:VPA\s+)?` + merchant,
			},
		},
	}
}
