// Package storefront provides an embedded Go client for the storefront
// pricing and search engines backed by Redis. It wires the same services the
// HTTP API serves, without the HTTP hop.
//
//	client, _ := storefront.New(ctx, storefront.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	quote, _ := client.GenerateQuote(ctx, "customer-1", map[string]int64{"product-1": 3})
//	order, _ := client.PlaceOrder(ctx, "customer-1", map[string]int64{"product-1": 3})
//	results, _ := client.SearchProducts(ctx, "laptop", 20)
package storefront
