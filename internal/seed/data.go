package seed

// Baseline dataset for local development. Customer and invoice IDs are
// fixed so reseeding upserts instead of duplicating rows.

type userSeed struct {
	ID       string
	Name     string
	Email    string
	Password string
}

type customerSeed struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

type invoiceSeed struct {
	ID         string
	CustomerID string
	Amount     int64 // cents
	Status     string
	Date       string // YYYY-MM-DD
}

type revenueSeed struct {
	Month   string
	Revenue int64
}

var users = []userSeed{
	{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var customers = []customerSeed{
	{
		ID:       "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       "76d65c26-f784-44a2-ac19-586678f7c2f2",
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       "cc27c14a-0acf-4f4a-a6c9-d45682c144b9",
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       "13d07535-c59e-4157-a011-f8d2ef4e0cbb",
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
	{
		ID:       "3958dc9e-787f-4377-85e9-fec4b6a6442a",
		Name:     "Steven Tey",
		Email:    "steven@tey.com",
		ImageURL: "/customers/steven-tey.png",
	},
	{
		ID:       "126eed9c-c90c-4ef6-a4a8-fcf7408d3c66",
		Name:     "Steph Dietz",
		Email:    "steph@dietz.com",
		ImageURL: "/customers/steph-dietz.png",
	},
	{
		ID:       "a9f2b6d1-5c74-4e8f-9d3b-7e1c22a40b17",
		Name:     "Hector Simpson",
		Email:    "hector@simpson.com",
		ImageURL: "/customers/hector-simpson.png",
	},
	{
		ID:       "b4c81d9e-6a02-47d5-8f61-90b3c5d7e2a8",
		Name:     "Emil Kowalski",
		Email:    "emil@kowalski.com",
		ImageURL: "/customers/emil-kowalski.png",
	},
}

var invoices = []invoiceSeed{
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0001", CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Amount: 15795, Status: "pending", Date: "2022-12-06"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0002", CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: 20348, Status: "pending", Date: "2022-11-14"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0003", CustomerID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Amount: 3040, Status: "paid", Date: "2022-10-29"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0004", CustomerID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Amount: 44800, Status: "paid", Date: "2023-09-10"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0005", CustomerID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Amount: 34577, Status: "pending", Date: "2023-08-05"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0006", CustomerID: "126eed9c-c90c-4ef6-a4a8-fcf7408d3c66", Amount: 54246, Status: "pending", Date: "2023-07-16"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0007", CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Amount: 666, Status: "pending", Date: "2023-06-27"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0008", CustomerID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Amount: 32545, Status: "paid", Date: "2023-06-09"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0009", CustomerID: "a9f2b6d1-5c74-4e8f-9d3b-7e1c22a40b17", Amount: 1250, Status: "paid", Date: "2023-06-17"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0010", CustomerID: "b4c81d9e-6a02-47d5-8f61-90b3c5d7e2a8", Amount: 8546, Status: "paid", Date: "2023-06-07"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0011", CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: 500, Status: "paid", Date: "2023-08-19"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0012", CustomerID: "126eed9c-c90c-4ef6-a4a8-fcf7408d3c66", Amount: 8945, Status: "paid", Date: "2023-06-03"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0013", CustomerID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Amount: 1000, Status: "paid", Date: "2022-06-05"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0014", CustomerID: "3958dc9e-787f-4377-85e9-fec4b6a6442a", Amount: 8945, Status: "paid", Date: "2023-06-18"},
	{ID: "8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0015", CustomerID: "3958dc9e-787f-4377-85e9-fec4b6a6442a", Amount: 1250, Status: "pending", Date: "2023-06-05"},
}

var revenue = []revenueSeed{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}
