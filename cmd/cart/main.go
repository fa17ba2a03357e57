package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nikolayk812/cartkeeper/internal/domain"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	cart := domain.NewCart()
	cart.AddItem(domain.NewItem("Laptop", 999.99))
	cart.AddItem(domain.NewItem("Smartphone", 499.99))

	if _, err := fmt.Fprintln(w, cart); err != nil {
		return fmt.Errorf("print cart: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Total: %s\n", strconv.FormatFloat(cart.Total(), 'f', -1, 64)); err != nil {
		return fmt.Errorf("print total: %w", err)
	}

	return nil
}
