// Package fakedata generates employee records with go-faker for seeding and demos.
package fakedata

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"

	"SlotDB/record"
)

// Generator hands out employee records with unique 9-digit SSNs.
// Text fields come from faker; numeric fields from the seeded source so a
// fixed seed yields a fixed key sequence.
type Generator struct {
	rng  *rand.Rand
	seen map[string]bool
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), seen: make(map[string]bool)}
}

// Reserve marks ssn as taken so Employee never returns it.
func (g *Generator) Reserve(ssn string) { g.seen[ssn] = true }

func (g *Generator) ssn() string {
	for {
		s := fmt.Sprintf("%09d", g.rng.Intn(1_000_000_000))
		if !g.seen[s] {
			g.seen[s] = true
			return s
		}
	}
}

// Employee returns one record in record.EmployeeLayout order.
func (g *Generator) Employee() record.Record {
	sex := "M"
	if g.rng.Intn(2) == 0 {
		sex = "F"
	}
	return record.EmployeeLayout.New(map[string]string{
		record.FieldName:           faker.Name(),
		record.FieldSSN:            g.ssn(),
		record.FieldDepartmentCode: strings.ToUpper(faker.Word()),
		record.FieldAddress:        faker.GetRealAddress().Address,
		record.FieldPhone:          digits(faker.Phonenumber(), 9),
		record.FieldBirthdate:      digits(faker.Date(), 8),
		record.FieldSex:            sex,
		record.FieldJobCode:        fmt.Sprintf("%04d", g.rng.Intn(10000)),
		record.FieldSalary:         fmt.Sprintf("%d", 1000+g.rng.Intn(9000)),
	})
}

// Employees returns n records.
func (g *Generator) Employees(n int) []record.Record {
	out := make([]record.Record, n)
	for i := range out {
		out[i] = g.Employee()
	}
	return out
}

// digits keeps at most n of the decimal digits in s.
func digits(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == n {
				break
			}
		}
	}
	return b.String()
}
