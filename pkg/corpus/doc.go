/*
Package corpus is the concordance engine.

A corpus is the whitespace-joined text of every source document. BuildIndex
tokenizes it once and records, for every normalized word, the ordered token
positions where it occurs. A Window turns a position back into a short example
sentence: a few tokens of left context, the token itself, and a right context
cut down to a character budget. Stitch joins the first K of those sentences
into the example block stored in an Entry.

The Ranker orders words by how often they occur and records that order in a
side file, palabras.on, every time it runs.

	text, _ := corpus.LoadCorpus(dirs...)
	ix := corpus.BuildIndex(text)
	ranked, _ := corpus.NewRanker(baseDir).Rank(candidates, ix)
	store := corpus.BuildStore(ix, corpus.Words(ranked), corpus.DefaultWindow(), 3)

The index is immutable after BuildIndex returns and positions are assigned in
strict token order, because they decide which sentences are shown.
*/
package corpus
