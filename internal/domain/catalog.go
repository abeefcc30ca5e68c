package domain

// Product is a reference-catalog row matched by sort, name or article.
type Product struct {
	ID      int64  `db:"id"`
	Sort    string `db:"sort"`
	Name    string `db:"name"`
	Article string `db:"article"`
}

// Stand is an exhibition stand with the tiles mounted on it.
type Stand struct {
	ID        int64  `db:"id"`
	StandName string `db:"stand_name"`
	Size      string `db:"size"`
	Article   string `db:"article"`
	TilesText string `db:"tiles_text"`
}
