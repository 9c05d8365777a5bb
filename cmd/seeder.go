package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/budget"
	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	budgetDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/budget"
	expenseDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/expense"
	feedbackDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/feedback"
	gigDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/gig"
	groupfundDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/groupfund"
	investmentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/investment"
	loanDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/loan"
	offerDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/offer"
	paymentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/payment"
	profileDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/profile"
	splitbillDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/splitbill"
	subscriptionDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/subscription"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		if clearData {
			if err := clearTables(db); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		s := newSeeder(seedOwner, time.Now())
		steps := []struct {
			name string
			rows interface{}
		}{
			{"profiles", s.profiles()},
			{"budget categories", s.budgetCategories()},
			{"expenses", s.expenses()},
			{"split bills", s.splitBills()},
			{"group funds", s.groupFunds()},
			{"loans", s.loans()},
			{"subscriptions", s.subscriptions()},
			{"investments", s.investments()},
			{"contacts", s.contacts()},
			{"transactions", s.transactions()},
			{"gigs", s.gigs()},
			{"offers", s.offers()},
		}

		for _, step := range steps {
			// rerunning the seeder leaves existing rows alone
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(step.rows)
			if res.Error != nil {
				log.Fatalf("failed to seed %s: %v", step.name, res.Error)
			}
			fmt.Printf("Seeded %s: %d new rows\n", step.name, res.RowsAffected)
		}

		fmt.Println("Seeding completed for owner", seedOwner)
	},
}

func clearTables(db *gorm.DB) error {
	models := []interface{}{
		&feedbackDatamodel.Feedback{},
		&paymentDatamodel.Transaction{},
		&paymentDatamodel.Contact{},
		&offerDatamodel.Offer{},
		&gigDatamodel.Gig{},
		&investmentDatamodel.Investment{},
		&subscriptionDatamodel.Subscription{},
		&loanDatamodel.Loan{},
		&groupfundDatamodel.GroupFund{},
		&splitbillDatamodel.SplitBill{},
		&expenseDatamodel.Expense{},
		&budgetDatamodel.BudgetCategory{},
		&profileDatamodel.Profile{},
	}
	for _, m := range models {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// seeder builds the sample data set. Dates are written relative to
// 2025-01-10 and shifted so that day lands on today.
type seeder struct {
	owner string
	shift time.Duration
}

var sampleToday = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func newSeeder(owner string, now time.Time) *seeder {
	return &seeder{owner: owner, shift: aggregate.CalendarDay(now).Sub(sampleToday)}
}

func (s *seeder) date(value string) time.Time {
	t, err := aggregate.ParseDate(value)
	if err != nil {
		panic(fmt.Sprintf("bad sample date %q", value))
	}
	return t.Add(s.shift)
}

// id derives a stable id per owner so reseeding hits the same rows.
func (s *seeder) id(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.owner+"/"+key)).String()
}

func (s *seeder) record(key string) datamodel.Record {
	return datamodel.Record{ID: s.id(key)}
}

func rupees(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func (s *seeder) profiles() []*profileDatamodel.Profile {
	return []*profileDatamodel.Profile{
		{ID: s.owner, DisplayName: "Akanksha Sharma", Email: "akanksha@college.edu", Avatar: "https://images.pexels.com/photos/3763188/pexels-photo-3763188.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop", MonthlyBudget: rupees(8000), TotalSavings: rupees(15420), Points: 850, SaverStreak: 12, BudgetingStreak: 8},
		{ID: "2", DisplayName: "Abhijeet", Email: "abhijeet@college.edu", MonthlyBudget: rupees(7500), TotalSavings: rupees(12300), Points: 720, SaverStreak: 9, BudgetingStreak: 15},
		{ID: "3", DisplayName: "Abinesh Raj", Email: "abinesh@college.edu", Avatar: "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop", MonthlyBudget: rupees(6500), TotalSavings: rupees(9850), Points: 640, SaverStreak: 6, BudgetingStreak: 11},
		{ID: "4", DisplayName: "Anuva Gupta", Email: "anuva@college.edu", Avatar: "https://images.pexels.com/photos/3814446/pexels-photo-3814446.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop", MonthlyBudget: rupees(9000), TotalSavings: rupees(18200), Points: 920, SaverStreak: 18, BudgetingStreak: 13},
	}
}

func (s *seeder) budgetCategories() []*budgetDatamodel.BudgetCategory {
	categories := budget.DefaultCategories(s.owner)
	rows := make([]*budgetDatamodel.BudgetCategory, len(categories))
	for i, c := range categories {
		rows[i] = budget.ToDataModel(c)
		rows[i].ID = s.id("budget/" + c.Name)
	}
	return rows
}

func (s *seeder) expenses() []*expenseDatamodel.Expense {
	return []*expenseDatamodel.Expense{
		{Record: s.record("expense/1"), OwnerID: s.owner, Title: "Lunch at campus cafeteria", Amount: rupees(120), Category: "food", Date: s.date("2025-01-10")},
		{Record: s.record("expense/2"), OwnerID: s.owner, Title: "Bus fare to internship", Amount: rupees(45), Category: "transport", Date: s.date("2025-01-10")},
		{Record: s.record("expense/3"), OwnerID: s.owner, Title: "Movie ticket", Amount: rupees(250), Category: "entertainment", Date: s.date("2025-01-09")},
		{Record: s.record("expense/4"), OwnerID: s.owner, Title: "Textbooks", Amount: rupees(800), Category: "study", Date: s.date("2025-01-08")},
	}
}

func (s *seeder) splitBills() []*splitbillDatamodel.SplitBill {
	return []*splitbillDatamodel.SplitBill{
		{Record: s.record("split/1"), OwnerID: s.owner, Title: "Pizza night", TotalAmount: rupees(800), Participants: []string{s.owner, "2", "3"}, PaidBy: "2", Date: s.date("2025-01-09")},
		{Record: s.record("split/2"), OwnerID: s.owner, Title: "Uber to mall", TotalAmount: rupees(180), Participants: []string{s.owner, "4"}, PaidBy: s.owner, Date: s.date("2025-01-08"), Settled: true},
	}
}

func (s *seeder) groupFunds() []*groupfundDatamodel.GroupFund {
	return []*groupfundDatamodel.GroupFund{
		{
			Record:        s.record("fund/1"),
			OwnerID:       s.owner,
			Title:         "Abhijeet's Birthday Party",
			Description:   "Birthday celebration at city mall",
			TargetAmount:  rupees(2000),
			CurrentAmount: rupees(1200),
			Contributors: []groupfundDatamodel.Contributor{
				{UserID: s.owner, Amount: rupees(400)},
				{UserID: "3", Amount: rupees(300)},
				{UserID: "4", Amount: rupees(500)},
			},
			Deadline: s.date("2025-01-25"),
		},
		{
			Record:        s.record("fund/2"),
			OwnerID:       s.owner,
			Title:         "Group Trip to Goa",
			Description:   "Spring break trip planning",
			TargetAmount:  rupees(15000),
			CurrentAmount: rupees(8500),
			Contributors: []groupfundDatamodel.Contributor{
				{UserID: s.owner, Amount: rupees(2000)},
				{UserID: "2", Amount: rupees(2500)},
				{UserID: "3", Amount: rupees(2000)},
				{UserID: "4", Amount: rupees(2000)},
			},
			Deadline: s.date("2025-03-15"),
		},
	}
}

func (s *seeder) loans() []*loanDatamodel.Loan {
	return []*loanDatamodel.Loan{
		{Record: s.record("loan/1"), OwnerID: s.owner, Amount: rupees(2000), Borrower: "Abinesh Raj", Lender: "Akanksha Sharma", Direction: "lent", InterestRate: rupees(2), DueDate: s.date("2025-02-15"), Status: "active", Description: "Emergency medical expense"},
		{Record: s.record("loan/2"), OwnerID: s.owner, Amount: rupees(1500), Borrower: "Akanksha Sharma", Lender: "Anuva Gupta", Direction: "borrowed", InterestRate: rupees(1), DueDate: s.date("2025-01-30"), Status: "active", Description: "Laptop repair cost"},
	}
}

func (s *seeder) subscriptions() []*subscriptionDatamodel.Subscription {
	return []*subscriptionDatamodel.Subscription{
		{Record: s.record("sub/1"), OwnerID: s.owner, Name: "Netflix", Amount: rupees(199), BillingCycle: "monthly", NextBilling: s.date("2025-01-15"), Status: "active", Autopay: true, Category: "entertainment"},
		{Record: s.record("sub/2"), OwnerID: s.owner, Name: "Spotify Student", Amount: rupees(59), BillingCycle: "monthly", NextBilling: s.date("2025-01-12"), Status: "active", Autopay: true, Category: "entertainment"},
		{Record: s.record("sub/3"), OwnerID: s.owner, Name: "Notion Plus", Amount: rupees(1200), BillingCycle: "yearly", NextBilling: s.date("2025-06-01"), Status: "active", Category: "productivity"},
		{Record: s.record("sub/4"), OwnerID: s.owner, Name: "Coursera", Amount: rupees(399), BillingCycle: "monthly", NextBilling: s.date("2025-01-20"), Status: "paused", Category: "education"},
	}
}

func (s *seeder) investments() []*investmentDatamodel.Investment {
	return []*investmentDatamodel.Investment{
		{Record: s.record("inv/1"), OwnerID: s.owner, Type: "gold", Symbol: "GOLD", Amount: rupees(5000), CurrentValue: rupees(5250)},
		{Record: s.record("inv/2"), OwnerID: s.owner, Type: "stocks", Symbol: "TCS", Amount: rupees(3000), CurrentValue: rupees(3180)},
		{Record: s.record("inv/3"), OwnerID: s.owner, Type: "mutual_fund", Symbol: "HDFC_EQ", Amount: rupees(2000), CurrentValue: rupees(1950)},
	}
}

func (s *seeder) contacts() []*paymentDatamodel.Contact {
	return []*paymentDatamodel.Contact{
		{Record: s.record("contact/abhijeet"), OwnerID: s.owner, Name: "Abhijeet", Phone: "+91 98765 43210", UpiID: "abhijeet@upi", IsFrequent: true},
		{Record: s.record("contact/abinesh"), OwnerID: s.owner, Name: "Abinesh Raj", Phone: "+91 98765 43211", UpiID: "abinesh@upi", IsFrequent: true},
		{Record: s.record("contact/anuva"), OwnerID: s.owner, Name: "Anuva Gupta", Phone: "+91 98765 43212", UpiID: "anuva@upi"},
	}
}

func (s *seeder) transactions() []*paymentDatamodel.Transaction {
	return []*paymentDatamodel.Transaction{
		{Record: s.record("tx/1"), OwnerID: s.owner, ContactID: s.id("contact/abhijeet"), Type: "sent", Amount: rupees(270), Description: "Pizza night share", Date: s.date("2025-01-09"), Status: "completed"},
		{Record: s.record("tx/2"), OwnerID: s.owner, ContactID: s.id("contact/anuva"), Type: "received", Amount: rupees(90), Description: "Uber to mall", Date: s.date("2025-01-08"), Status: "completed"},
		{Record: s.record("tx/3"), OwnerID: s.owner, ContactID: s.id("contact/abinesh"), Type: "sent", Amount: rupees(300), Description: "Birthday fund", Date: s.date("2025-01-07"), Status: "pending"},
	}
}

// Gigs and offers are shared catalog rows, so their ids do not depend on the
// owner.
func (s *seeder) gigs() []*gigDatamodel.Gig {
	catalogID := func(key string) datamodel.Record {
		return datamodel.Record{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte("catalog/"+key)).String()}
	}
	return []*gigDatamodel.Gig{
		{Record: catalogID("gig/1"), Title: "Math Tutor for High School", Company: "EduTech Solutions", HourlyRate: rupees(300), Type: "teaching", Location: "Online/Hybrid", Requirements: []string{"Strong math background", "Good communication", "Flexible schedule"}},
		{Record: catalogID("gig/2"), Title: "Frontend Developer Intern", Company: "TechStart Inc.", HourlyRate: rupees(250), Type: "coding", Location: "Remote", Requirements: []string{"React knowledge", "HTML/CSS", "Portfolio required"}},
		{Record: catalogID("gig/3"), Title: "Content Writer", Company: "Digital Marketing Co.", HourlyRate: rupees(200), Type: "writing", Location: "Remote", Requirements: []string{"Good English", "Creative writing", "SEO basics"}},
	}
}

func (s *seeder) offers() []*offerDatamodel.Offer {
	catalogID := func(key string) datamodel.Record {
		return datamodel.Record{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte("catalog/"+key)).String()}
	}
	code := func(c string) *string { return &c }
	return []*offerDatamodel.Offer{
		{Record: catalogID("offer/1"), Brand: "Zomato", Title: "50% off on orders above ₹200", Discount: "50% OFF", Category: "food", ValidUntil: s.date("2025-01-20"), Code: code("STUDENT50")},
		{Record: catalogID("offer/2"), Brand: "Swiggy", Title: "Free delivery on all orders", Discount: "FREE DELIVERY", Category: "food", ValidUntil: s.date("2025-01-25")},
		{Record: catalogID("offer/3"), Brand: "Amazon", Title: "₹500 off on electronics", Discount: "₹500 OFF", Category: "shopping", ValidUntil: s.date("2025-01-30"), Code: code("TECH500")},
		{Record: catalogID("offer/4"), Brand: "BookMyShow", Title: "Buy 1 Get 1 Free on movie tickets", Discount: "BOGO", Category: "entertainment", ValidUntil: s.date("2025-01-22")},
	}
}
