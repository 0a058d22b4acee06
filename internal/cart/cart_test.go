package cart

import (
	"math/rand"
	"testing"

	"sialkot-shop/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, price string) domain.Product {
	return domain.Product{ID: id, Name: "Product " + id, Category: "Apparel", Price: price}
}

func TestItemID(t *testing.T) {
	assert.Equal(t, "prod-4-M-#262626", ItemID("prod-4", "M", "#262626"))
	assert.Equal(t, "prod-1-default-default", ItemID("prod-1", "", ""))
	assert.Equal(t, "prod-1-default-#FFFFFF", ItemID("prod-1", "", "#FFFFFF"))
}

func TestAdd_AppendsInInsertionOrder(t *testing.T) {
	c := New()
	c.Add(product("a", "$1.00"), Options{Quantity: 1})
	c.Add(product("b", "$2.00"), Options{Quantity: 1})
	c.Add(product("a", "$1.00"), Options{Size: "M", Quantity: 1})

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a-default-default", items[0].ID)
	assert.Equal(t, "b-default-default", items[1].ID)
	assert.Equal(t, "a-M-default", items[2].ID)
	assert.Equal(t, "M", items[2].SelectedSize)
}

func TestAdd_SnapshotsProduct(t *testing.T) {
	c := New()
	p := product("a", "$10.00")
	c.Add(p, Options{Quantity: 1})

	p.Price = "$99.00"
	p.Name = "Renamed"

	item, ok := c.Get("a-default-default")
	require.True(t, ok)
	assert.Equal(t, "$10.00", item.Product.Price)
	assert.Equal(t, "Product a", item.Product.Name)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(product("a", "$1.00"), Options{Quantity: 2})

	c.UpdateQuantity("a-default-default", 5)
	item, _ := c.Get("a-default-default")
	assert.Equal(t, 5, item.Quantity)

	c.UpdateQuantity("missing", 3)
	assert.Equal(t, 1, c.Len())

	c.UpdateQuantity("a-default-default", 0)
	assert.True(t, c.IsEmpty())
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(product("a", "$1.00"), Options{Quantity: 1})
	c.Add(product("b", "$1.00"), Options{Quantity: 1})

	c.Remove("nope")
	assert.Equal(t, 2, c.Len())

	c.Remove("a-default-default")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b-default-default", items[0].ID)
}

func TestSubtotal_Example(t *testing.T) {
	c := New()
	c.Add(domain.Product{ID: "prod-1", Name: "Soccer Ball", Price: "$45.00"}, Options{Quantity: 2})
	c.Add(domain.Product{ID: "prod-2", Name: "Leather Jacket", Price: "$149.99"}, Options{Quantity: 1})

	assert.True(t, decimal.RequireFromString("239.99").Equal(c.Subtotal()))
	assert.Equal(t, "239.99", FormatAmount(c.Subtotal()))
	assert.Equal(t, 3, c.ItemCount())
}

func TestParsePrice(t *testing.T) {
	cases := map[string]string{
		"$45.00":      "45",
		"$149.99":     "149.99",
		"Rs. 1,250":   "0.125",
		"1,250 PKR":   "1250",
		"":            "0",
		"free":        "0",
		".":           "0",
		"$1.2.3":      "1.2",
		"$12.":        "12",
		"USD 79.50":   "79.5",
		"price: $.50": "0.5",
	}
	for in, want := range cases {
		got := ParsePrice(in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "ParsePrice(%q) = %s, want %s", in, got, want)
	}
}

func TestSubtotal_IsExactForCents(t *testing.T) {
	c := New()
	c.Add(domain.Product{ID: "p", Price: "$0.10"}, Options{Quantity: 3})

	assert.Equal(t, "0.3", c.Subtotal().String())
	assert.Equal(t, "0.30", FormatAmount(c.Subtotal()))
}

// Property: repeated adds of one variant collapse into a single line whose
// quantity is the sum of the requested quantities
func TestProperty_AddMergesSameVariant(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("same (product, size, color) yields one line with summed quantity", prop.ForAll(
		func(quantities []int, size string, color string) bool {
			c := New()
			p := product("prod-x", "$3.50")
			sum := 0
			for _, q := range quantities {
				c.Add(p, Options{Size: size, Color: color, Quantity: q})
				sum += q
			}

			if c.Len() != 1 {
				t.Logf("FAIL: expected 1 line, got %d", c.Len())
				return false
			}
			item, ok := c.Get(ItemID("prod-x", size, color))
			return ok && item.Quantity == sum
		},
		gen.SliceOfN(5, gen.IntRange(1, 20)),
		gen.OneConstOf("", "S", "M", "XL"),
		gen.OneConstOf("", "#000000", "#FFFFFF"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: non-positive quantities remove the line; positive ones are set exactly
func TestProperty_UpdateQuantity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("quantity is set exactly or the line is removed", prop.ForAll(
		func(initial int, q int) bool {
			c := New()
			item := c.Add(product("p", "$1.00"), Options{Quantity: initial})
			c.UpdateQuantity(item.ID, q)

			got, ok := c.Get(item.ID)
			if q <= 0 {
				return !ok && c.IsEmpty()
			}
			return ok && got.Quantity == q
		},
		gen.IntRange(1, 50),
		gen.IntRange(-10, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: subtotal depends only on the final lines, not on operation order
func TestProperty_SubtotalOrderInvariant(t *testing.T) {
	catalog := []domain.Product{
		product("a", "$45.00"),
		product("b", "$149.99"),
		product("c", "$28.00"),
		product("d", "Rs 79.5"),
		product("e", "n/a"),
	}

	properties := gopter.NewProperties(nil)

	properties.Property("shuffled adds and removes give the same subtotal", prop.ForAll(
		func(quantities []int, removed []bool, seed int64) bool {
			type op struct {
				remove bool
				index  int
				qty    int
			}
			var ops []op
			for i, q := range quantities {
				idx := i % len(catalog)
				ops = append(ops, op{index: idx, qty: q})
			}

			apply := func(order []op) *Cart {
				c := New()
				for _, o := range order {
					c.Add(catalog[o.index], Options{Quantity: o.qty})
				}
				for i, r := range removed {
					if r {
						c.Remove(ItemID(catalog[i%len(catalog)].ID, "", ""))
					}
				}
				return c
			}

			shuffled := append([]op(nil), ops...)
			rng := rand.New(rand.NewSource(seed))
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

			return apply(ops).Subtotal().Equal(apply(shuffled).Subtotal())
		},
		gen.SliceOfN(10, gen.IntRange(1, 9)),
		gen.SliceOfN(5, gen.Bool()),
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
