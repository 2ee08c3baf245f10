package seed

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Type names a kind of generated record.
type Type string

// Supported data types, in listing order.
const (
	Person      Type = "person"
	Address     Type = "address"
	Company     Type = "company"
	Product     Type = "product"
	Transaction Type = "transaction"
	User        Type = "user"
)

// Spec describes a data type: its fields and how to fill them.
type Spec struct {
	Type        Type
	Description string
	Fields      []string

	// values returns one value per field, in Fields order.
	values func(f *gofakeit.Faker, now time.Time) []any
}

var transactionStatuses = []string{"pending", "completed", "failed", "refunded"}

var specs = []Spec{
	{
		Type:        Person,
		Description: "Person data (name, email, phone, address)",
		Fields:      []string{"id", "first_name", "last_name", "email", "phone", "date_of_birth", "address"},
		values: func(f *gofakeit.Faker, now time.Time) []any {
			return []any{
				f.UUID(),
				f.FirstName(),
				f.LastName(),
				f.Email(),
				f.Phone(),
				f.DateRange(now.AddDate(-90, 0, 0), now.AddDate(-18, 0, 0)).Format(time.DateOnly),
				oneLineAddress(f),
			}
		},
	},
	{
		Type:        Address,
		Description: "Address data (street, city, country, coordinates)",
		Fields:      []string{"id", "street", "city", "state", "country", "postal_code", "latitude", "longitude"},
		values: func(f *gofakeit.Faker, _ time.Time) []any {
			return []any{
				f.UUID(),
				f.Street(),
				f.City(),
				f.State(),
				f.Country(),
				f.Zip(),
				formatCoordinate(f.Latitude()),
				formatCoordinate(f.Longitude()),
			}
		},
	},
	{
		Type:        Company,
		Description: "Company data (name, email, website, industry)",
		Fields:      []string{"id", "name", "email", "phone", "website", "industry", "address"},
		values: func(f *gofakeit.Faker, _ time.Time) []any {
			return []any{
				f.UUID(),
				f.Company(),
				f.Email(),
				f.Phone(),
				f.URL(),
				f.BS(),
				oneLineAddress(f),
			}
		},
	},
	{
		Type:        Product,
		Description: "Product data (name, description, price, SKU)",
		Fields:      []string{"id", "name", "description", "price", "sku", "barcode", "category"},
		values: func(f *gofakeit.Faker, _ time.Time) []any {
			return []any{
				f.UUID(),
				f.ProductName(),
				truncate(f.ProductDescription(), 200),
				round2(f.Price(1, 1000)),
				strings.ToUpper(f.Lexify("???")) + "-" + f.Numerify("########"),
				f.Numerify("#############"),
				f.ProductCategory(),
			}
		},
	},
	{
		Type:        Transaction,
		Description: "Transaction data (amount, currency, date, status)",
		Fields:      []string{"id", "transaction_id", "amount", "currency", "date", "status", "description"},
		values: func(f *gofakeit.Faker, now time.Time) []any {
			return []any{
				f.UUID(),
				f.UUID(),
				round2(f.Float64Range(1, 10000)),
				f.CurrencyShort(),
				f.DateRange(startOfYear(now), now).Format(time.RFC3339),
				f.RandomString(transactionStatuses),
				f.Phrase(),
			}
		},
	},
	{
		Type:        User,
		Description: "User data (username, email, password hash)",
		Fields:      []string{"id", "username", "email", "password_hash", "created_at", "last_login", "is_active"},
		values: func(f *gofakeit.Faker, now time.Time) []any {
			return []any{
				f.UUID(),
				f.Username(),
				f.Email(),
				sha256Hex(f.Password(true, true, true, true, false, 16)),
				f.DateRange(now.AddDate(-10, 0, 0), now).Format(time.RFC3339),
				f.DateRange(startOfYear(now), now).Format(time.RFC3339),
				f.Bool(),
			}
		},
	},
}

// Specs returns every supported data type in listing order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Types returns the names of the supported data types.
func Types() []Type {
	out := make([]Type, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Type)
	}
	return out
}

// Lookup returns the spec of a data type.
func Lookup(t Type) (Spec, bool) {
	for _, s := range specs {
		if s.Type == t {
			return s, true
		}
	}
	return Spec{}, false
}

func oneLineAddress(f *gofakeit.Faker) string {
	a := f.Address()
	return strings.Join([]string{a.Street, a.City, a.State + " " + a.Zip, a.Country}, ", ")
}

func formatCoordinate(v float64) string {
	return strings.TrimRight(strings.TrimRight(formatFloat(v, 6), "0"), ".")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}
