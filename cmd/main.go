package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"github.com/controlfin/controlfin-backend/internal/database"
	"github.com/controlfin/controlfin-backend/internal/finance"
	"github.com/controlfin/controlfin-backend/models"
	"github.com/controlfin/controlfin-backend/utils"
)

func ScheduleCategoryMaintenance(pool *pgxpool.Pool) {
	c := cron.New()

	_, err := c.AddFunc("@monthly", func() {
		if err := database.ResetCategoryAmounts(pool); err != nil {
			log.Printf("error resetting category amounts: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("error scheduling monthly category reset: %v", err)
	}

	_, err = c.AddFunc("@daily", func() {
		if err := database.RefreshCategoryAmounts(pool); err != nil {
			log.Printf("error refreshing category amounts: %v", err)
		} else {
			log.Println("category amounts refreshed")
		}
	})
	if err != nil {
		log.Fatalf("error scheduling daily category refresh: %v", err)
	}

	c.Start()
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:5173" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

func userIDFromQuery(c *gin.Context) (int, bool) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return userID, true
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func main() {
	seed := flag.Bool("seed", false, "populate the database with demo data and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on the environment")
	}

	pool, err := database.Connect(context.Background())
	if err != nil {
		log.Fatalf("error connecting to the database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(context.Background(), pool); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	if *seed {
		utils.SeedDemoData(pool)
		return
	}

	ScheduleCategoryMaintenance(pool)

	r := gin.Default()
	r.Use(CORSMiddleware())

	r.POST("/register", func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			log.Printf("error binding JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload"})
			return
		}
		if user.Email == "" || user.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		if err := database.RegisterUser(pool, &user); err != nil {
			log.Printf("error registering user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
			return
		}

		log.Printf("user registered: ID = %d", user.ID)
		c.JSON(http.StatusCreated, gin.H{"message": "user registered", "user_id": user.ID})
	})

	r.POST("/login", func(c *gin.Context) {
		var credentials models.User
		if err := c.ShouldBindJSON(&credentials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials payload"})
			return
		}
		user, err := database.AuthenticateUser(pool, credentials.Email, credentials.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "login successful", "user": user})
	})

	r.POST("/categories", func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category payload"})
			return
		}
		if err := database.CreateCategory(pool, &category); err != nil {
			log.Printf("error creating category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	})

	r.GET("/categories", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		categories, err := database.GetCategoriesByUserID(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	})

	r.PUT("/categories/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category payload"})
			return
		}
		category.ID = id
		if err := database.UpdateCategory(pool, &category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category updated"})
	})

	r.DELETE("/categories/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := database.DeleteCategory(pool, id); err != nil {
			log.Printf("error deleting category %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	})

	r.POST("/accounts", func(c *gin.Context) {
		var account models.BankAccount
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account payload"})
			return
		}
		if err := database.CreateAccount(pool, &account); err != nil {
			log.Printf("error creating account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating account"})
			return
		}
		c.JSON(http.StatusCreated, account)
	})

	r.GET("/accounts", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		accounts, err := database.GetAccountsByUserID(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching accounts"})
			return
		}
		c.JSON(http.StatusOK, accounts)
	})

	r.PUT("/accounts/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var account models.BankAccount
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account payload"})
			return
		}
		account.ID = id
		if err := database.UpdateAccount(pool, &account); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating account"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account updated"})
	})

	r.DELETE("/accounts/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := database.DeleteAccount(pool, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting account"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
	})

	// Balances are never stored; each read folds the account's paid
	// transactions over its initial balance.
	r.GET("/accounts/:id/balance", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		account, err := database.GetAccountByID(pool, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		transactions, err := database.GetTransactionsByAccountID(pool, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching transactions"})
			return
		}
		balance := finance.AccountBalance(*account, transactions)
		c.JSON(http.StatusOK, gin.H{
			"account_id": account.ID,
			"balance":    balance,
			"formatted":  utils.FormatCurrency(balance),
		})
	})

	r.POST("/creditcards", func(c *gin.Context) {
		var card models.CreditCard
		if err := c.ShouldBindJSON(&card); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card payload"})
			return
		}
		if err := database.CreateCreditCard(pool, &card); err != nil {
			log.Printf("error creating credit card: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating credit card"})
			return
		}
		c.JSON(http.StatusCreated, card)
	})

	r.GET("/creditcards", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		cards, err := database.GetCreditCardsByUserID(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching credit cards"})
			return
		}
		c.JSON(http.StatusOK, cards)
	})

	r.PUT("/creditcards/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var card models.CreditCard
		if err := c.ShouldBindJSON(&card); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card payload"})
			return
		}
		card.ID = id
		if err := database.UpdateCreditCard(pool, &card); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating credit card"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "credit card updated"})
	})

	r.DELETE("/creditcards/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := database.DeleteCreditCard(pool, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting credit card"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "credit card deleted"})
	})

	// Statements are derived fresh on every read: "today" shifts the
	// reference month and the status labels.
	r.GET("/creditcards/:id/statements", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		card, err := database.GetCreditCardByID(pool, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "credit card not found"})
			return
		}
		transactions, err := database.GetTransactionsByCardID(pool, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching card transactions"})
			return
		}
		statements := finance.GenerateStatements(card.ClosingDay, card.DueDay, transactions, time.Now())
		c.JSON(http.StatusOK, statements)
	})

	r.GET("/creditcards/:id/next_statement", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		card, err := database.GetCreditCardByID(pool, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "credit card not found"})
			return
		}
		transactions, err := database.GetTransactionsByCardID(pool, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching card transactions"})
			return
		}

		now := time.Now()
		amount := finance.NextStatementAmount(*card, transactions, now)
		c.JSON(http.StatusOK, gin.H{
			"closing_date": finance.NextClosingDate(card.ClosingDay, now),
			"due_date":     finance.NextDueDate(card.DueDay, card.ClosingDay, now),
			"amount":       amount,
			"formatted":    utils.FormatCurrency(amount),
		})
	})

	r.POST("/transactions", func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			log.Printf("error binding JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction payload", "details": err.Error()})
			return
		}

		if transaction.TotalInstallments != nil && *transaction.TotalInstallments > 1 {
			created, err := database.CreateInstallmentTransactions(pool, &transaction)
			if err != nil {
				log.Printf("error creating installments: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating installments"})
				return
			}
			c.JSON(http.StatusCreated, created)
			return
		}

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			log.Printf("error creating transaction: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating transaction"})
			return
		}
		c.JSON(http.StatusCreated, transaction)
	})

	r.GET("/transactions", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		transactions, err := database.GetTransactionsByUserID(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching transactions"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	})

	r.PUT("/transactions/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction payload"})
			return
		}
		transaction.ID = id
		if err := database.UpdateTransaction(pool, &transaction); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating transaction"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "transaction updated"})
	})

	r.PATCH("/transactions/:id/pay", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var payload struct {
			Paid bool `json:"paid"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paid payload"})
			return
		}
		if err := database.SetTransactionPaid(pool, id, payload.Paid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating paid flag"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "transaction updated"})
	})

	r.DELETE("/transactions/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := database.DeleteTransaction(pool, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting transaction"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
	})

	r.GET("/dashboard/total_balance", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		balance, err := database.GetTotalBalance(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total_balance": balance, "formatted": utils.FormatCurrency(balance)})
	})

	r.GET("/dashboard/monthly_expenses", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		expenses, err := database.GetMonthlyExpenses(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"expenses": expenses})
	})

	r.GET("/dashboard/income_expense_summary", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		summary, err := database.GetIncomeExpenseSummary(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	})

	r.GET("/dashboard/category_expenses", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		categoryExpenses, err := database.GetCategoryExpenses(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"category_expenses": categoryExpenses})
	})

	r.POST("/goals", func(c *gin.Context) {
		var goal models.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			log.Printf("error binding JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal payload"})
			return
		}
		if goal.UserID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user id is required"})
			return
		}
		if err := database.CreateGoal(pool, &goal); err != nil {
			log.Printf("error creating goal: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating goal"})
			return
		}
		c.JSON(http.StatusCreated, goal)
	})

	r.GET("/goals", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		goals, err := database.GetGoalsByUserID(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching goals"})
			return
		}
		c.JSON(http.StatusOK, goals)
	})

	r.PUT("/goals/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var goal models.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal payload"})
			return
		}
		goal.ID = id
		if err := database.UpdateGoal(pool, &goal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating goal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "goal updated"})
	})

	r.DELETE("/goals/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := database.DeleteGoal(pool, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting goal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
	})

	r.PATCH("/goals/:id/progress", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var progress struct {
			Amount decimal.Decimal `json:"amount"`
		}
		if err := c.ShouldBindJSON(&progress); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress payload"})
			return
		}
		if progress.Amount.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be positive"})
			return
		}
		if err := database.AddProgressToGoal(pool, id, progress.Amount); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding progress"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "progress added"})
	})

	r.GET("/goals/:id/progress", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		goal, err := database.GetGoalByID(pool, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		investments, err := database.GetInvestmentsByGoalID(pool, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching goal investments"})
			return
		}
		c.JSON(http.StatusOK, finance.CalculateGoalProgress(*goal, investments, time.Now()))
	})

	r.POST("/investments", func(c *gin.Context) {
		var investment models.Investment
		if err := c.ShouldBindJSON(&investment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid investment payload"})
			return
		}
		if err := database.CreateInvestment(pool, &investment); err != nil {
			log.Printf("error creating investment: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating investment"})
			return
		}
		c.JSON(http.StatusCreated, investment)
	})

	r.GET("/investments", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		investments, err := database.GetInvestmentsByUserID(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching investments"})
			return
		}
		c.JSON(http.StatusOK, investments)
	})

	r.PUT("/investments/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var investment models.Investment
		if err := c.ShouldBindJSON(&investment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid investment payload"})
			return
		}
		investment.ID = id
		if err := database.UpdateInvestment(pool, &investment); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating investment"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "investment updated"})
	})

	r.DELETE("/investments/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := database.DeleteInvestment(pool, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting investment"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "investment deleted"})
	})

	r.GET("/investments/timeline", func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}
		investments, err := database.GetInvestmentsByUserID(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching investments"})
			return
		}

		var onlyID *int
		if raw := c.Query("investment_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid investment id"})
				return
			}
			onlyID = &id
		}

		points := finance.InvestmentTimeline(investments, onlyID, time.Now())
		c.JSON(http.StatusOK, gin.H{"timeline": points})
	})

	r.GET("/usersettings/:id", func(c *gin.Context) {
		userID, ok := idParam(c)
		if !ok {
			return
		}
		settings, err := database.GetUserSettingsByID(pool, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user settings not found"})
			return
		}
		c.JSON(http.StatusOK, settings)
	})

	r.PUT("/usersettings/:id", func(c *gin.Context) {
		userID, ok := idParam(c)
		if !ok {
			return
		}
		var settings models.UserSettings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
			return
		}
		settings.UserID = userID
		if err := database.UpdateUserSettings(pool, &settings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating user settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "settings updated", "settings": settings})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
