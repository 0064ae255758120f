package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"gic-bank/internal/domain"
	"gic-bank/internal/usecase"
)

// CLI drives the interactive banking menu over an injected reader and
// writer. All input validation (date shape, type letter, amount precision)
// happens here; the ledger core trusts the strings it receives.
type CLI struct {
	bank        *usecase.BankUseCase
	in          *bufio.Scanner
	out         io.Writer
	recentCount int
	heading     *color.Color
}

// New wires the menu to a bank usecase and an input/output pair.
func New(bank *usecase.BankUseCase, in io.Reader, out io.Writer, recentCount int) *CLI {
	if recentCount <= 0 {
		recentCount = usecase.DefaultRecentCount
	}
	return &CLI{
		bank:        bank,
		in:          bufio.NewScanner(in),
		out:         out,
		recentCount: recentCount,
		heading:     color.New(color.FgCyan, color.Bold),
	}
}

// Run loops on the main menu until the user quits or input ends.
func (c *CLI) Run() {
	first := true
	for {
		c.showMainMenu(first)
		first = false

		line, ok := c.readLine()
		if !ok {
			return
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "T":
			c.transactionMenu()
		case "I":
			c.interestRuleMenu()
		case "P":
			c.statementMenu()
		case "Q":
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "Thank you for banking with AwesomeGIC Bank.")
			fmt.Fprintln(c.out, "Have a nice day!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *CLI) showMainMenu(first bool) {
	fmt.Fprintln(c.out)
	if first {
		c.heading.Fprintln(c.out, "Welcome to AwesomeGIC Bank! What would you like to do?")
	} else {
		c.heading.Fprintln(c.out, "Is there anything else you'd like to do?")
	}
	fmt.Fprintln(c.out, "[T] Input transactions")
	fmt.Fprintln(c.out, "[I] Define interest rules")
	fmt.Fprintln(c.out, "[P] Print statement")
	fmt.Fprintln(c.out, "[Q] Quit")
	fmt.Fprint(c.out, "> ")
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// prompt prints instruction and reads one input line, reporting false on a
// blank line or exhausted input (both return to the main menu).
func (c *CLI) prompt(instruction string) (string, bool) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, instruction)
	fmt.Fprint(c.out, "> ")
	line, ok := c.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return "", false
	}
	return line, true
}

func (c *CLI) transactionMenu() {
	for {
		line, ok := c.prompt("Please enter transaction details in <Date(YYYYMMDD)> <Account> <Type> <Amount> format (or enter blank to go back to main menu):")
		if !ok {
			return
		}
		if err := c.handleTransaction(strings.Fields(line)); err != nil {
			fmt.Fprintln(c.out, err.Error())
		}
	}
}

func (c *CLI) handleTransaction(fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("expected <Date(YYYYMMDD)> <Account> <Type> <Amount>")
	}

	date := fields[0]
	if err := validateDate(date); err != nil {
		return err
	}

	var txType domain.TransactionType
	switch strings.ToUpper(fields[2]) {
	case "D":
		txType = domain.TypeDeposit
	case "W":
		txType = domain.TypeWithdrawal
	default:
		return fmt.Errorf("invalid transaction type %q: expected D or W", fields[2])
	}

	amount, err := parseAmount(fields[3])
	if err != nil {
		return err
	}

	if _, err := c.bank.ProcessTransaction(date, fields[1], txType, amount); err != nil {
		return err
	}

	statement, err := c.bank.RecentTransactions(fields[1], c.recentCount)
	if err != nil {
		return err
	}
	c.printTransactions(statement)
	return nil
}

func (c *CLI) interestRuleMenu() {
	for {
		line, ok := c.prompt("Please enter interest rules details in <Date(YYYYMMDD)> <RuleId> <Rate in %> format (or enter blank to go back to main menu):")
		if !ok {
			return
		}
		if err := c.handleInterestRule(strings.Fields(line)); err != nil {
			fmt.Fprintln(c.out, err.Error())
		}
	}
}

func (c *CLI) handleInterestRule(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("expected <Date(YYYYMMDD)> <RuleId> <Rate in %%>")
	}

	date := fields[0]
	if err := validateDate(date); err != nil {
		return err
	}

	rate, err := decimal.NewFromString(fields[2])
	if err != nil {
		return fmt.Errorf("invalid rate %q: expected a number", fields[2])
	}

	if err := c.bank.AddInterestRule(date, fields[1], rate); err != nil {
		return err
	}
	c.printInterestRules()
	return nil
}

func (c *CLI) statementMenu() {
	for {
		line, ok := c.prompt("Please enter account and month to generate the statement <Account> <Year><Month> (or enter blank to go back to main menu):")
		if !ok {
			return
		}
		if err := c.handleStatement(strings.Fields(line)); err != nil {
			fmt.Fprintln(c.out, err.Error())
		}
	}
}

func (c *CLI) handleStatement(fields []string) error {
	switch len(fields) {
	case 1:
		statement, err := c.bank.AccountStatement(fields[0], 0, 0)
		if err != nil {
			return err
		}
		c.printTransactions(statement)
		return nil
	case 2:
		period := fields[1]
		if len(period) != 6 {
			return fmt.Errorf("invalid period %q: expected YYYYMM", period)
		}
		if _, err := time.Parse("200601", period); err != nil {
			return fmt.Errorf("invalid period %q: expected YYYYMM", period)
		}
		year, month := domain.YearMonth(period)

		statement, err := c.bank.AccountStatement(fields[0], year, month)
		if err != nil {
			return err
		}
		c.printStatement(statement)
		return nil
	default:
		return fmt.Errorf("expected <Account> <Year><Month>")
	}
}

// printTransactions renders the balance-agnostic recency view.
func (c *CLI) printTransactions(statement *domain.AccountStatement) {
	fmt.Fprintln(c.out)
	c.heading.Fprintf(c.out, "Account: %s\n", statement.AccountID)
	fmt.Fprintln(c.out, "| Date     | Txn Id      | Type | Amount |")
	for _, tx := range statement.Transactions {
		fmt.Fprintf(c.out, "| %s | %-11s | %-4s | %6s |\n",
			tx.Date, tx.TransactionID, tx.Type, tx.Amount.StringFixed(2))
	}
}

// printStatement renders the monthly view with a running balance column
// seeded from the opening balance.
func (c *CLI) printStatement(statement *domain.AccountStatement) {
	fmt.Fprintln(c.out)
	c.heading.Fprintf(c.out, "Account: %s\n", statement.AccountID)
	fmt.Fprintln(c.out, "| Date     | Txn Id      | Type | Amount | Balance |")

	balance := statement.OpeningBalance
	for _, tx := range statement.Transactions {
		if tx.Type == domain.TypeWithdrawal {
			balance = balance.Sub(tx.Amount)
		} else {
			balance = balance.Add(tx.Amount)
		}
		fmt.Fprintf(c.out, "| %s | %-11s | %-4s | %6s | %7s |\n",
			tx.Date, tx.TransactionID, tx.Type, tx.Amount.StringFixed(2), balance.StringFixed(2))
	}
}

func (c *CLI) printInterestRules() {
	fmt.Fprintln(c.out)
	c.heading.Fprintln(c.out, "Interest rules:")
	fmt.Fprintln(c.out, "| Date     | RuleId | Rate (%) |")
	for _, rule := range c.bank.InterestRules() {
		fmt.Fprintf(c.out, "| %s | %-6s | %8s |\n", rule.Date, rule.RuleID, rule.Rate.StringFixed(2))
	}
}

func validateDate(date string) error {
	if len(date) != 8 {
		return fmt.Errorf("invalid date %q: expected YYYYMMDD", date)
	}
	if _, err := time.Parse(domain.DayLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYYMMDD", date)
	}
	return nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: expected a number", raw)
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("invalid amount %q: at most 2 decimal places", raw)
	}
	return amount, nil
}
