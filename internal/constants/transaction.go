package constants

const (
	// Transaction types
	TypeIncome  = "income"
	TypeExpense = "expense"

	// Date Layout
	DateTimeFormat = "2006-01-02 15:04:05"

	MaxNameLen = 100
)

const (
	PlaceholderTitle = "Название счёта"

	ConfirmRemoveAccount     = "Вы действительно хотите удалить счёт?"
	ConfirmRemoveTransaction = "Вы действительно хотите удалить транзакцию?"

	CurrencySign = "₽"
)
