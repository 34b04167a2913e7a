/*
Package lexicon is the word classification and bucketing engine.

Candidate words flow through four steps:

	Normalize -> Rules.Accept -> Classifier.Classify -> Bucket

Normalize canonicalizes a raw token to lowercase 'a'..'z' letters, Rules rejects
words by length bounds and ForbiddenSet membership, the Classifier assigns a
Category from a priority-ordered chain of literal affix rules, and Bucket groups
the words of each category by exact length.

Everything here is a pure function of its inputs or a structure that is built
once and only read afterwards. Nothing touches the file system.
*/
package lexicon
