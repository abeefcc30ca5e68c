package dialog

import "fmt"

func (e *Engine) productsQuery(c *call) (Reply, error) {
	products, err := e.store.SearchProducts(c.ctx, c.text)
	if err != nil {
		return Reply{}, fmt.Errorf("dialog: search products: %w", err)
	}
	if len(products) == 0 {
		return e.finish(c, text(c.lang, "clients_search_none"))
	}
	return e.finish(c, textf(c.lang, "search_results", formatProducts(products)))
}

func (e *Engine) standsQuery(c *call) (Reply, error) {
	stands, err := e.store.SearchStands(c.ctx, c.text)
	if err != nil {
		return Reply{}, fmt.Errorf("dialog: search stands: %w", err)
	}
	if len(stands) == 0 {
		return e.finish(c, text(c.lang, "clients_search_none"))
	}
	return e.finish(c, textf(c.lang, "search_results", formatStands(stands)))
}
