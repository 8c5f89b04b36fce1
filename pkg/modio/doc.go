// Package modio defines the public surface of the mod.io API client:
// the Client interface, its configuration, the resource types, the
// filter builder for list endpoints, and the error taxonomy.
//
// Create clients with the modioclient package:
//
//	client, err := modioclient.New(&modio.Config{APIKey: "key"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	game, err := client.Games().Get(ctx, 34)
//
// List endpoints accept a Filter that lowers predicates, sorting, and
// pagination to the service's query grammar:
//
//	mods, err := client.Mods().List(ctx, 34, modio.NewFilter().
//		Text("weapon").
//		Min("date_updated", 1609459200).
//		Sort("downloads_total", true).
//		Limit(20))
//
// Write operations need an OAuth2 access token, obtained out of band or
// through the email flow exposed by Auth().
package modio
