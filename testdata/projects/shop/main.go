package main

import (
	"fmt"
	"os"

	"example.com/shop/internal/store"
)

func main() {
	fmt.Println(os.Getenv("SHOP_PORT"), store.Name)
}
