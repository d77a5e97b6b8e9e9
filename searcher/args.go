package searcher

// Defaults for adversarial search

const DefaultDepth = 2 // Rounds of look-ahead
