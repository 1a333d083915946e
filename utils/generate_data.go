package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/controlfin/controlfin-backend/internal/database"
	"github.com/controlfin/controlfin-backend/models"
)

// SeedDemoData fills the database with a handful of fake users and a
// plausible spread of financial data for each of them.
func SeedDemoData(pool *pgxpool.Pool) {
	for i := 0; i < 3; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 10),
		}
		if err := database.RegisterUser(pool, user); err != nil {
			log.Fatalf("error seeding user: %v", err)
		}

		categories := generateCategories(pool, user.ID)
		accounts := generateAccounts(pool, user.ID)
		cards := generateCreditCards(pool, user.ID)
		generateTransactions(pool, user.ID, categories, accounts, cards)
		goals := generateGoals(pool, user.ID)
		generateInvestments(pool, user.ID, categories, goals)

		log.Printf("seeded demo data for user %d (%s)", user.ID, user.Email)
	}
}

func generateCategories(pool *pgxpool.Pool, userID int) []models.Category {
	types := []string{
		models.CategoryIncome,
		models.CategoryExpense,
		models.CategoryExpense,
		models.CategoryExpense,
		models.CategoryInvestment,
	}

	categories := make([]models.Category, 0, len(types))
	for _, categoryType := range types {
		budget := decimal.NewFromFloat(gofakeit.Price(200, 2000))
		category := models.Category{
			UserID: userID,
			Name:   gofakeit.ProductCategory(),
			Type:   categoryType,
			Icon:   gofakeit.Emoji(),
			Color:  gofakeit.HexColor(),
		}
		if categoryType == models.CategoryExpense {
			category.Budget = &budget
		}
		if err := database.CreateCategory(pool, &category); err != nil {
			log.Fatalf("error seeding category: %v", err)
		}
		categories = append(categories, category)
	}
	return categories
}

func generateAccounts(pool *pgxpool.Pool, userID int) []models.BankAccount {
	types := []string{models.AccountChecking, models.AccountSavings, models.AccountWallet}

	accounts := make([]models.BankAccount, 0, len(types))
	for _, accountType := range types {
		account := models.BankAccount{
			UserID:         userID,
			Name:           gofakeit.Company(),
			Type:           accountType,
			InitialBalance: decimal.NewFromFloat(gofakeit.Price(100, 5000)),
			Color:          gofakeit.HexColor(),
			Bank:           gofakeit.Company(),
			Active:         true,
		}
		if err := database.CreateAccount(pool, &account); err != nil {
			log.Fatalf("error seeding account: %v", err)
		}
		accounts = append(accounts, account)
	}
	return accounts
}

func generateCreditCards(pool *pgxpool.Pool, userID int) []models.CreditCard {
	cards := make([]models.CreditCard, 0, 2)
	for i := 0; i < 2; i++ {
		card := models.CreditCard{
			UserID:     userID,
			Name:       gofakeit.Company(),
			Limit:      decimal.NewFromFloat(gofakeit.Price(1000, 15000)),
			ClosingDay: rand.Intn(28) + 1,
			DueDay:     rand.Intn(28) + 1,
			Color:      gofakeit.HexColor(),
		}
		if err := database.CreateCreditCard(pool, &card); err != nil {
			log.Fatalf("error seeding credit card: %v", err)
		}
		cards = append(cards, card)
	}
	return cards
}

func generateTransactions(pool *pgxpool.Pool, userID int, categories []models.Category, accounts []models.BankAccount, cards []models.CreditCard) {
	for i := 0; i < 40; i++ {
		category := categories[rand.Intn(len(categories))]

		transaction := models.Transaction{
			UserID:      userID,
			Description: gofakeit.Sentence(3),
			Amount:      decimal.NewFromFloat(gofakeit.Price(5, 800)),
			Date:        time.Now().AddDate(0, 0, -rand.Intn(90)),
			CategoryID:  category.ID,
			Paid:        rand.Intn(4) > 0,
			Active:      true,
		}

		switch category.Type {
		case models.CategoryIncome:
			transaction.Type = models.TransactionIncome
			transaction.PaymentMethod = models.PaymentTransfer
			transaction.AccountID = &accounts[rand.Intn(len(accounts))].ID
		case models.CategoryInvestment:
			transaction.Type = models.TransactionInvestment
			transaction.PaymentMethod = models.PaymentPix
			transaction.AccountID = &accounts[rand.Intn(len(accounts))].ID
		default:
			transaction.Type = models.TransactionExpense
			expenseType := randomExpenseType()
			transaction.ExpenseType = &expenseType
			if rand.Intn(2) == 0 {
				transaction.PaymentMethod = models.PaymentCredit
				transaction.CreditCardID = &cards[rand.Intn(len(cards))].ID
			} else {
				transaction.PaymentMethod = models.PaymentDebit
				transaction.AccountID = &accounts[rand.Intn(len(accounts))].ID
			}
		}

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			log.Fatalf("error seeding transaction: %v", err)
		}
	}

	// One installment purchase per card so the statement views have
	// chains to show.
	for i := range cards {
		total := 6
		transaction := models.Transaction{
			UserID:            userID,
			Description:       gofakeit.ProductName(),
			Amount:            decimal.NewFromFloat(gofakeit.Price(300, 2400)),
			Date:              time.Now().AddDate(0, 0, -rand.Intn(30)),
			Type:              models.TransactionExpense,
			CategoryID:        categories[1].ID,
			PaymentMethod:     models.PaymentCredit,
			CreditCardID:      &cards[i].ID,
			TotalInstallments: &total,
			Paid:              true,
			Active:            true,
		}
		if _, err := database.CreateInstallmentTransactions(pool, &transaction); err != nil {
			log.Fatalf("error seeding installments: %v", err)
		}
	}
}

func randomExpenseType() string {
	if rand.Intn(2) == 0 {
		return models.ExpenseFixed
	}
	return models.ExpenseVariable
}

func generateGoals(pool *pgxpool.Pool, userID int) []models.Goal {
	goals := make([]models.Goal, 0, 2)
	for i := 0; i < 2; i++ {
		deadline := time.Now().AddDate(1, rand.Intn(12), 0)
		goal := models.Goal{
			UserID:        userID,
			Name:          gofakeit.HackerNoun(),
			TargetAmount:  decimal.NewFromFloat(gofakeit.Price(5000, 50000)),
			CurrentAmount: decimal.NewFromFloat(gofakeit.Price(0, 4000)),
			Deadline:      &deadline,
			Notes:         gofakeit.Sentence(6),
			Color:         gofakeit.HexColor(),
			Active:        true,
		}
		if err := database.CreateGoal(pool, &goal); err != nil {
			log.Fatalf("error seeding goal: %v", err)
		}
		goals = append(goals, goal)
	}
	return goals
}

func generateInvestments(pool *pgxpool.Pool, userID int, categories []models.Category, goals []models.Goal) {
	types := []string{
		models.InvestmentCDB,
		models.InvestmentTesouro,
		models.InvestmentStocks,
		models.InvestmentFunds,
	}

	for i := 0; i < 4; i++ {
		expectedReturn := decimal.NewFromFloat(gofakeit.Float64Range(4, 14)).Round(2)
		investment := models.Investment{
			UserID:         userID,
			Name:           gofakeit.Company(),
			Amount:         decimal.NewFromFloat(gofakeit.Price(500, 10000)),
			Type:           types[i%len(types)],
			InitialDate:    time.Now().AddDate(0, -rand.Intn(24), 0),
			ExpectedReturn: &expectedReturn,
			CategoryID:     categories[len(categories)-1].ID,
			Notes:          gofakeit.Sentence(4),
			Active:         true,
		}
		if i < 2 && len(goals) > 0 {
			investment.GoalID = &goals[i%len(goals)].ID
		}
		if err := database.CreateInvestment(pool, &investment); err != nil {
			log.Fatalf("error seeding investment: %v", err)
		}
	}
}
