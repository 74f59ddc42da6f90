// Package ofx parses OFX/QFX bank exports into ledger transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"

	"github.com/jay870423/one-sentence/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns ledger transactions.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	now := time.Now()
	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convertTransaction(ofxTx, string(stmt.BankAcctFrom.AcctID), now))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convertTransaction(ofxTx, string(stmt.CCAcctFrom.AcctID), now))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convertTransaction converts an OFX transaction to a ledger record.
// OFX amounts are signed: negative for money out, positive for money in.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, accountID string, now time.Time) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	txnType := model.TypeIncome
	if amount < 0 {
		txnType = model.TypeExpense
		amount = -amount
	}

	txn := model.Transaction{
		ID:        uuid.NewString(),
		Date:      ofxTx.DtPosted.Time,
		Amount:    amount,
		Category:  categoryForType(fmt.Sprintf("%v", ofxTx.TrnType)),
		Note:      p.extractNote(ofxTx),
		Type:      txnType,
		CreatedAt: now,
	}

	// FITID is the bank's own transaction identifier; scoping it by account
	// keeps imports of overlapping statements idempotent.
	if ofxTx.FiTID != "" {
		txn.SourceID = accountID + ":" + string(ofxTx.FiTID)
	}

	return txn
}

// categoryForType infers a vocabulary category from the OFX transaction
// type where one is obvious; everything else lands in Other for the user to
// recategorize.
func categoryForType(ofxType string) string {
	switch ofxType {
	case "INT", "DIV":
		return "Salary"
	case "FEE", "SRVCHG":
		return "Utilities"
	default:
		return "Other"
	}
}

// extractNote derives the record note from OFX payee/name/memo fields.
func (p *Parser) extractNote(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := strings.TrimSpace(string(tx.Name))
	memo := strings.TrimSpace(string(tx.Memo))

	if name == "" {
		return memo
	}
	if memo != "" && !strings.EqualFold(name, memo) && isGenericDescription(name) {
		return memo
	}
	return name
}

// isGenericDescription reports whether a NAME field carries no real
// merchant information.
func isGenericDescription(name string) bool {
	generic := []string{"DEBIT", "CREDIT", "PAYMENT", "PURCHASE", "POS", "WITHDRAWAL", "DEPOSIT"}
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, g := range generic {
		if upper == g {
			return true
		}
	}
	return false
}
