package detector

// Classify exports the pure detection rule for testing.
var Classify = classify
