package parser

// Messages shared by the parser tests, one group per pattern set.
const (
	hdfcDebit   = "HDFC Bank: INR 1,250.00 has been debited from A/c XX1234 for purchase at AMAZON on 25-Feb-26. Avl Bal: INR 45,678.90"
	hdfcCard    = "You've spent Rs.2,200 On HDFC Bank CREDIT Card xx4321 At DECATHLON On 2026-03-10:11:43:59 Avl bal: Rs.85,000.00 Curr O/s: Rs.14,266"
	hdfcCredit  = "HDFC Bank: INR 25,000.00 credited to A/c XX1234 on 01-Mar-26 from ACME CORP. Avl Bal: INR 70,678.90"
	hdfcPromo   = "HDFC Bank: Get a pre-approved personal loan at 10.5% p.a. Apply now at hdfc.bank.in. T&C apply"
	hdfcOTP     = "Your OTP for HDFC Bank NetBanking is 482913. Do not share it with anyone."
	sbiDebit    = "SBI: Rs.500 debited from A/c XX9012 for UPI/P2M/SWIGGY on 25-Feb. Bal: Rs.12,345.67"
	sbiTransfer = "Dear SBI User, your A/c X4521 has a debit by transfer of Rs 1,000.00 on 10Mar26 transfer to RAHUL KUMAR Ref No 123456. Avl Bal Rs 4,567.89"
	sbiCredit   = "Dear Customer, your A/c X4521 has been credited by Rs.2,500.00 on 11Mar26 from PRIYA SHARMA. Avl Bal Rs.7,067.89 -SBI"
	axisDebit   = "INR 2,340.00 debited from A/c no. XX5678 on 12-03-26 at BIGBASKET. Avl Bal INR 18,200.50 - Axis Bank"
	axisCredit  = "INR 15,000.00 credited to A/c no. XX5678 on 15-03-26 by NEFT from INFOSYS LTD. Avl Bal INR 33,200.50 - Axis Bank"
	kotakDebit  = "Sent Rs.899.00 from Kotak Bank AC X3456 to netflix@icici on 14-03-26.UPI Ref 407312345678. Avl Bal Rs.5,101.00"
	kotakCredit = "Received Rs.1,200.00 in your Kotak Bank AC X3456 from rahul@ybl on 15-03-26.UPI Ref 407398765432. Avl Bal Rs.10,450.25"
	iciciCard   = "INR 965.00 spent on ICICI Bank Card XX9876 on 07-Mar-26 at SWIGGY. Avl Bal: INR 1,23,456.28"
	iciciLimit  = "INR 232.42 spent on ICICI Bank Card XX9876 on 04-Mar-26 at ONE97 COMMUNICA. Avl Lmt: INR 1,23,456.28. To dispute,call 18002662/SMS BLOCK 0000 to 9215676766"
	iciciUPI    = "ICICI Bank Acct XX1234 debited for Rs 1,499.00 on 16-Mar-26; AIRTEL credited. UPI:407312349999. Avl Bal Rs 8,501.00"
	iciciCredit = "Dear Customer, Acct XX1234 is credited with Rs 5,000.00 on 17-Mar-26 from SURESH KUMAR. UPI:407312340000-ICICI Bank. Avl Bal Rs 12,000.00"
	upiWallet   = "UPI: Money sent! Rs.150 debited from Paytm Wallet to ZOMATO@paytm. Wallet Bal: Rs.850.00"
	upiPaid     = "Paid Rs.240.00 to uber@ybl via UPI. Ref 1234. Wallet Bal: Rs.610.00"
	upiReceived = "UPI: Received Rs.2,000.00 from amit@ybl. Wallet Bal: Rs.2,850.00"
	notBank     = "Your Amazon order has shipped and will arrive tomorrow."
)

// Messages without a counterparty that end in a "Not you?" footer.
const (
	axisDebitFooter   = "Axis Bank: INR 2,340.00 debited from A/c no. XX5678 on 12-03-26. Avl Bal INR 18,200.50. Not you? SMS BLOCK 5678 to 919951860002"
	kotakDebitFooter  = "Kotak Bank: Rs.899.00 debited from your A/c X3456 on 14-03-26. Avl Bal Rs.5,101.00. Not you? Report to 18602662666"
	sbiDebitFooter    = "Dear SBI User, your A/c X4521 has a debit by transfer of Rs 1,000.00 on 10Mar26. Avl Bal Rs 4,567.89. Not you? SMS BLOCK to 9223008333"
	hdfcCreditFooter  = "HDFC Bank: INR 25,000.00 credited to A/c XX1234 on 01-Mar-26. Avl Bal: INR 70,678.90. Not you? Call from registered mobile"
	sbiCreditFooter   = "Dear Customer, your A/c X4521 has been credited by Rs.2,500.00 on 11Mar26. Avl Bal Rs.7,067.89. Not you? Call from registered mobile -SBI"
	axisCreditFooter  = "Axis Bank: INR 15,000.00 credited to A/c no. XX5678 on 15-03-26. Avl Bal INR 33,200.50. Not you? Write from registered email"
	kotakCreditFooter = "Kotak Bank: Rs.1,200.00 credited to your A/c X3456 on 15-03-26. Avl Bal Rs.10,450.25. Not you? Call from registered mobile"
	iciciCreditFooter = "ICICI Bank: Acct XX1234 is credited with Rs 5,000.00 on 17-Mar-26. Avl Bal Rs 12,000.00. Not you? Call from registered mobile"
)
