package typeshape_test

import (
	"fmt"

	typeshape "github.com/ryzmae/typeshape"
	"github.com/ryzmae/typeshape/deep"
	"github.com/ryzmae/typeshape/shape"
)

func Example() {
	user := typeshape.MustRecord(
		typeshape.Field{Name: "id", Value: typeshape.Brand(typeshape.String(), "UserID")},
		typeshape.Field{Name: "name", Value: typeshape.String()},
		typeshape.Field{Name: "address", Value: typeshape.MustRecord(
			typeshape.Field{Name: "city", Value: typeshape.String()},
			typeshape.Field{Name: "zip", Value: typeshape.String()},
		)},
	)

	public, err := shape.Pick(user, "name", "address")
	if err != nil {
		fmt.Println("pick:", err)
		return
	}
	fmt.Println(public.Names())
	fmt.Println(deep.Keys(deep.Omit(public, "address.zip")))
	// Output:
	// [name address]
	// [name address address.city]
}
