// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql builds every server-side query with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const customerAttributeKeyGroup = "Customer"

// Role system names. Only registered customers that are not sellers
// themselves are synchronized.
const (
	customerRoleRegistered = "Registered"
	customerRoleSeller     = "Seller"
)

const customerHasRole = `EXISTS (SELECT 1 FROM customer_role_mappings crm
	JOIN customer_roles cr ON cr.id = crm.customer_role_id
	WHERE crm.customer_id = customers.id AND cr.system_name = ?)`

var (
	orderColumns = []string{
		"o.id", "o.deleted", "o.created_on_utc", "o.updated_on_utc",
		"o.order_shipping_excl_tax", "o.order_discount", "o.custom_values",
		"o.order_status_id", "o.paid_date_utc", "o.customer_id",
		"o.billing_address_id", "ba.address1", "ba.address2",
	}

	orderItemColumns = []string{
		"oi.id", "oi.order_id", "oi.product_id",
		"oi.unit_price_excl_tax", "oi.unit_price_incl_tax", "oi.quantity",
		"o.created_on_utc", "o.updated_on_utc",
	}

	addressColumns = []string{
		"a.id", "a.deleted", "a.created_on_utc", "a.updated_on_utc", "ca.customer_id",
		"a.first_name", "a.last_name", "a.email", "a.company", "a.city",
		"a.address1", "a.address2", "a.zip_postal_code", "a.phone_number",
	}

	customerColumns = []string{
		"id", "deleted", "created_on_utc", "updated_on_utc",
		"username", "first_name", "last_name", "email", "phone", "identity_card",
		"system_name", "seller_id",
	}

	sellerStatisticsColumns = []string{
		"id", "deleted", "created_on_utc", "updated_on_utc",
		"seller_id", "month", "total_invoiced", "total_collected", "activations",
	}

	invoiceColumns = []string{
		"id", "deleted", "created_on_utc", "updated_on_utc",
		"ext_id", "document_type", "total", "balance",
		"customer_name", "customer_id", "seller_id", "tax_printer_number",
	}

	productColumns = []string{
		"id", "deleted", "created_on_utc", "updated_on_utc",
		"sku", "name", "price", "old_price", "stock_quantity", "published",
	}
)

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// Orders are owned through their customer. The billing address is optional.
func buildSelectOrdersForSellerQuery(sellerID int64) (string, []any, error) {
	return toSQL(psql.Select(orderColumns...).
		From("orders o").
		Join("customers c ON c.id = o.customer_id").
		LeftJoin("addresses ba ON ba.id = o.billing_address_id").
		Where(sq.Eq{"c.seller_id": sellerID, "o.deleted": false}).
		OrderBy("o.id"))
}

// Items are owned through order and customer and inherit the order's
// timestamps.
func buildSelectOrderItemsForSellerQuery(sellerID int64) (string, []any, error) {
	return toSQL(psql.Select(orderItemColumns...).
		From("order_items oi").
		Join("orders o ON o.id = oi.order_id").
		Join("customers c ON c.id = o.customer_id").
		Where(sq.Eq{"c.seller_id": sellerID, "o.deleted": false}).
		OrderBy("oi.id"))
}

// An address linked to several customers of the seller is returned once,
// attributed to the lowest customer id.
func buildSelectAddressesForSellerQuery(sellerID int64) (string, []any, error) {
	return toSQL(psql.Select(addressColumns...).
		Options("DISTINCT ON (a.id)").
		From("addresses a").
		Join("customer_addresses ca ON ca.address_id = a.id").
		Join("customers c ON c.id = ca.customer_id").
		Where(sq.Eq{"c.seller_id": sellerID, "c.deleted": false, "a.deleted": false}).
		OrderBy("a.id", "ca.customer_id"))
}

func buildSelectCustomersForSellerQuery(sellerID int64) (string, []any, error) {
	return toSQL(psql.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"seller_id": sellerID, "deleted": false}).
		Where(sq.Expr(customerHasRole, customerRoleRegistered)).
		Where(sq.Expr("NOT "+customerHasRole, customerRoleSeller)).
		OrderBy("id"))
}

func buildSelectCustomerSystemNamesQuery(customerIDs []int64) (string, []any, error) {
	return toSQL(psql.Select("id", "system_name").
		From("customers").
		Where(sq.Eq{"id": customerIDs}).
		OrderBy("id"))
}

func buildSelectCustomerAttributesQuery(customerIDs []int64, keys []string) (string, []any, error) {
	return toSQL(psql.Select("entity_id", "key", "value").
		From("generic_attributes").
		Where(sq.Eq{
			"key_group": customerAttributeKeyGroup,
			"entity_id": customerIDs,
			"key":       keys,
		}).
		OrderBy("entity_id", "id"))
}

func buildSelectStatisticsForSellerQuery(sellerID int64) (string, []any, error) {
	return toSQL(psql.Select(sellerStatisticsColumns...).
		From("seller_statistics").
		Where(sq.Eq{"seller_id": sellerID, "deleted": false}).
		OrderBy("id"))
}

// Invoices are selected regardless of their deleted flag.
func buildSelectInvoicesForSellerQuery(sellerID int64) (string, []any, error) {
	return toSQL(psql.Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id"))
}

func buildSelectPublishedProductsQuery() (string, []any, error) {
	return toSQL(psql.Select(productColumns...).
		From("products").
		Where(sq.Eq{"published": true, "deleted": false}).
		OrderBy("id"))
}

func buildSelectProductCategoriesQuery(productIDs []int64) (string, []any, error) {
	return toSQL(psql.Select("product_id", "category_id").
		From("product_categories").
		Where(sq.Eq{"product_id": productIDs}).
		OrderBy("product_id", "display_order", "category_id"))
}
