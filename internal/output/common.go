package output

// TSVHeader is the canonical header row for the k-mer report.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "kmer\tCount\tNextChars"
