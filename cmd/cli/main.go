// Command cli operates the exchange from the terminal, sharing the data
// directory with the server. Login state persists between invocations
// through the session entry in storage.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/Rhymond/go-money"
	"github.com/dolarasia/dolarasia/pkg/app"
	"github.com/dolarasia/dolarasia/pkg/config"
	domainexchange "github.com/dolarasia/dolarasia/pkg/domain/exchange"
	"github.com/dolarasia/dolarasia/pkg/service/auth"
	exchangesvc "github.com/dolarasia/dolarasia/pkg/service/exchange"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	// Keep the terminal quiet; only warnings and errors from the services.
	cfg.Log.Level = int(slog.LevelWarn)

	logger := app.SetupLogger(cfg.Log)
	ctx := context.Background()

	deps, err := app.InitDeps(ctx, cfg, logger)
	if err != nil {
		color.Red("Failed to initialize: %v", err)
		os.Exit(1)
	}
	a := app.New(deps, cfg)

	if err := dispatch(ctx, a, os.Args[1], os.Args[2:]); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  register <email> <full name> <phone> <address> <id number>")
	fmt.Println("  login <email>")
	fmt.Println("  logout")
	fmt.Println("  whoami")
	fmt.Println("  rates")
	fmt.Println("  exchange <buy|sell> <currency> <amount> [payment method]")
	fmt.Println("  history")
	fmt.Println("  stats")
}

func dispatch(ctx context.Context, a *app.App, cmd string, args []string) error {
	switch cmd {
	case "register":
		return register(ctx, a, args)
	case "login":
		return login(ctx, a, args)
	case "logout":
		return logout(ctx, a)
	case "whoami":
		return whoami(a)
	case "rates":
		return listRates(a)
	case "exchange":
		return placeOrder(ctx, a, args)
	case "history":
		return history(ctx, a)
	case "stats":
		return stats(ctx, a)
	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func register(ctx context.Context, a *app.App, args []string) error {
	if len(args) < 5 {
		return fmt.Errorf("usage: register <email> <full name> <phone> <address> <id number>")
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	u, err := a.AuthService.Register(ctx, auth.RegisterInput{
		Email:    args[0],
		Password: password,
		FullName: args[1],
		Phone:    args[2],
		Address:  args[3],
		IDNumber: args[4],
	})
	if err != nil {
		return err
	}
	color.Green("Registered and signed in as %s <%s>", u.FullName, u.Email)
	return nil
}

func login(ctx context.Context, a *app.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: login <email>")
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	u, err := a.AuthService.Login(ctx, args[0], password)
	if err != nil {
		return err
	}
	color.Green("Signed in as %s <%s>", u.FullName, u.Email)
	return nil
}

func logout(ctx context.Context, a *app.App) error {
	if !a.Deps.Sessions.IsAuthenticated() {
		fmt.Println("Not signed in.")
		return nil
	}
	if err := a.AuthService.Logout(ctx); err != nil {
		return err
	}
	color.Green("Signed out.")
	return nil
}

func whoami(a *app.App) error {
	u := a.Deps.Sessions.Current()
	if u == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	role := "customer"
	if u.IsAdmin {
		role = "admin"
	}
	fmt.Printf("%s <%s> (%s)\n", u.FullName, u.Email, role)
	return nil
}

func listRates(a *app.App) error {
	bold := color.New(color.Bold)
	bold.Printf("%-4s %-20s %14s %14s\n", "", "Currency", "Buy", "Sell")
	for _, r := range a.RateService.List() {
		fmt.Printf("%-4s %-20s %14s %14s\n",
			r.Flag,
			fmt.Sprintf("%s (%s)", r.Name, r.Code),
			formatIDR(r.Buy),
			formatIDR(r.Sell),
		)
	}
	return nil
}

func placeOrder(ctx context.Context, a *app.App, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: exchange <buy|sell> <currency> <amount> [payment method]")
	}
	u := a.Deps.Sessions.Current()
	if u == nil {
		return fmt.Errorf("sign in first")
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}
	paymentMethod := "cash"
	if len(args) > 3 {
		paymentMethod = args[3]
	}
	tx, err := a.ExchangeService.CreateTransaction(ctx, u.ID, exchangesvc.CreateTransactionInput{
		Direction:     domainexchange.Direction(args[0]),
		Currency:      strings.ToUpper(args[1]),
		Amount:        amount,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return err
	}
	color.Green("Transaction %s recorded (%s).", tx.ID, tx.Status)
	fmt.Printf("  %s %s -> %s %s at %s\n",
		formatAmount(tx.Amount, tx.FromCurrency),
		tx.FromCurrency,
		formatAmount(tx.Total, tx.ToCurrency),
		tx.ToCurrency,
		formatIDR(tx.Rate),
	)
	return nil
}

func history(ctx context.Context, a *app.App) error {
	u := a.Deps.Sessions.Current()
	if u == nil {
		return fmt.Errorf("sign in first")
	}
	txs, err := a.ExchangeService.ListByUser(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}
	for _, tx := range txs {
		fmt.Printf("%s  %-4s %4s %14s -> %14s  %s\n",
			tx.CreatedAt.Local().Format("2006-01-02 15:04"),
			tx.Direction,
			tx.FromCurrency,
			formatAmount(tx.Amount, tx.FromCurrency),
			formatAmount(tx.Total, tx.ToCurrency),
			tx.Status,
		)
	}
	return nil
}

func stats(ctx context.Context, a *app.App) error {
	if !a.Deps.Sessions.IsAdmin() {
		return fmt.Errorf("admin only")
	}
	s, err := a.ExchangeService.GetStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Users:                %d\n", s.TotalUsers)
	fmt.Printf("Transactions:         %d\n", s.TotalTransactions)
	fmt.Printf("Pending transactions: %d\n", s.PendingTransactions)
	fmt.Printf("Volume:               %s\n", formatIDR(s.VolumeIDR))
	return nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

func formatIDR(v float64) string {
	return money.NewFromFloat(v, money.IDR).Display()
}

func formatAmount(v float64, code string) string {
	if money.GetCurrency(code) == nil {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return money.NewFromFloat(v, code).Display()
}
