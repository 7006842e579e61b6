package domain

import "time"

const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"

	DefaultUserName = "Unknown"
	DefaultPackage  = "Basic"
)

const (
	CurrencyINR    = "INR"
	CurrencyUSD    = "USD"
	CurrencyCrypto = "Crypto"
)

const (
	DepositPending  = "Pending"
	DepositApproved = "Approved"
	DepositRejected = "Rejected"
)

const (
	WithdrawalPending   = "Pending"
	WithdrawalCompleted = "Completed"
	WithdrawalFailed    = "Failed"
)

const (
	TxnTypeDeposit    = "Deposit"
	TxnTypeWithdrawal = "Withdrawal"
	TxnTypeBonus      = "Bonus"
	TxnTypeTransfer   = "Transfer"

	TxnStatusPending   = "Pending"
	TxnStatusCompleted = "Completed"
	TxnStatusFailed    = "Failed"
	TxnStatusCancelled = "Cancelled"
)

const (
	TicketPending  = "pending"
	TicketReplied  = "replied"
	TicketResolved = "resolved"
)

type User struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Mobile        string    `db:"mobile"`
	PasswordHash  string    `db:"password_hash"`
	SponsorID     string    `db:"sponsor_id"`
	SponsorName   string    `db:"sponsor_name"`
	Country       string    `db:"country"`
	BankName      string    `db:"bank_name"`
	AccountNumber string    `db:"account_number"`
	IFSCCode      string    `db:"ifsc_code"`
	USDTAddress   string    `db:"usdt_address"`
	Package       string    `db:"package"`
	Status        string    `db:"status"`
	IsAdmin       bool      `db:"is_admin"`
	CreatedAt     time.Time `db:"created_at"`
}

// ShortID is the 7-character display form of the user id. Ids shorter than
// 7 characters are already in display form.
func (u *User) ShortID() string {
	return ShortID(u.ID)
}

// Normalize applies record defaults once at the data-access boundary so
// consumers never re-default optional fields.
func (u *User) Normalize() {
	if u.Name == "" {
		u.Name = DefaultUserName
	}
	if u.Package == "" {
		u.Package = DefaultPackage
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}
}

type DepositRequest struct {
	ID         int       `db:"id"`
	RequestID  string    `db:"request_id"`
	Token      string    `db:"token"`
	UserID     string    `db:"user_id"`
	Name       string    `db:"name"`
	Currency   string    `db:"currency"`
	Amount     float64   `db:"amount"`
	TxnID      string    `db:"txn_id"`
	ReceiptURL string    `db:"receipt_url"`
	Status     string    `db:"status"`
	Credited   bool      `db:"credited"`
	Date       time.Time `db:"date"`
}

type WithdrawalRequest struct {
	ID            int       `db:"id"`
	RequestID     string    `db:"request_id"`
	UserID        string    `db:"user_id"`
	Amount        float64   `db:"amount"`
	PayINR        float64   `db:"pay_inr"`
	AccountNumber string    `db:"account_number"`
	IFSCCode      string    `db:"ifsc_code"`
	Fullname      string    `db:"fullname"`
	CompanyID     string    `db:"company_id"`
	TxnID         string    `db:"txn_id"`
	Status        string    `db:"status"`
	Date          time.Time `db:"date"`
}

const (
	BucketMain   = "main_wallet"
	BucketTotal  = "total_bonus"
	BucketDirect = "direct_bonus"
	BucketLevel  = "level_bonus"
)

type Wallet struct {
	ID          int       `db:"id"`
	UserID      string    `db:"user_id"`
	MainWallet  float64   `db:"main_wallet"`
	TotalBonus  float64   `db:"total_bonus"`
	DirectBonus float64   `db:"direct_bonus"`
	LevelBonus  float64   `db:"level_bonus"`
	LastUpdated time.Time `db:"last_updated"`
}

type Transaction struct {
	ID               int       `db:"id"`
	TransactionID    string    `db:"transaction_id"`
	UserID           string    `db:"user_id"`
	Type             string    `db:"type"`
	Amount           float64   `db:"amount"`
	Currency         string    `db:"currency"`
	Status           string    `db:"status"`
	Description      string    `db:"description"`
	RelatedRequestID string    `db:"related_request_id"`
	BalanceAfter     float64   `db:"balance_after"`
	Date             time.Time `db:"date"`
}

type SupportTicket struct {
	ID          int       `db:"id"`
	TicketID    string    `db:"ticket_id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	Query       string    `db:"query"`
	Subject     string    `db:"subject"`
	Description string    `db:"description"`
	Reply       string    `db:"reply"`
	Status      string    `db:"status"`
	Date        time.Time `db:"date"`
}

// TeamMember is one referral row on the team page. UserID and SponsorID carry
// the truncated display forms.
type TeamMember struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Package   string `json:"package"`
	SponsorID string `json:"sponsorId"`
	Status    string `json:"status"`
}

// LevelSummary groups the referrals found at one depth of the sponsor tree
// together with that level's earnings total. Computed, never persisted.
type LevelSummary struct {
	Level    int          `json:"level"`
	Members  []TeamMember `json:"members"`
	Earnings float64      `json:"earnings"`
}
