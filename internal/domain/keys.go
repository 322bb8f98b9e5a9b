package domain

// KeyPrefix namespaces every storefront key in the catalog store.
const KeyPrefix = "storefront:"
