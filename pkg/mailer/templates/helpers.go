package templates

// Brand holds the sender identity rendered in every email.
type Brand struct {
	AppName     string
	CompanyName string
	SupportURL  string
}

// Option pattern
type Option func(*EmailData)

func WithExpense(id, description, price, date, createdAt string) Option {
	return func(d *EmailData) {
		d.ExpenseID = id
		d.Description = description
		d.Price = price
		d.Date = date
		d.CreatedAt = createdAt
	}
}

// NewBaseEmailData fills the common fields from brand, then applies opts
func NewBaseEmailData(brand Brand, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:  name,
		Email: email,
		Type:  typ,

		AppName:     brand.AppName,
		CompanyName: brand.CompanyName,
		SupportURL:  brand.SupportURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewExpenseCreatedData(brand Brand, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(brand, ExpenseCreated, name, email, opts...))
}
