/*
Package pipeline wires the lexicon and corpus engines to the file layout under
a base directory and runs the three batch pipelines:

  - Sort reads word.on and word.off, filters, classifies and buckets the
    candidates and writes everything under parts/.
  - Concord ranks every vocabulary list by corpus popularity and writes
    composite example records under booktore/.
  - Build writes each vocabulary list, plain or with rank keys, under build/.

Every run is single-shot: output directories are deleted and recreated before
writing and any error aborts the run, possibly leaving earlier files written.
*/
package pipeline
