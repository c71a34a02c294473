// Package ipadic builds kotoba's word list from a mecab-ipadic checkout.
//
// Every *.csv file is decoded from EUC-JP. The reading (column 12, or the
// surface form when it is missing) is converted to hiragana, stripped of
// anything outside ぁ..ゞ and ー, de-duplicated and sorted. The result is
// written as gzip UTF-8 text next to a copy of the dictionary's COPYING file
// and a NOTICE.txt describing the build.
package ipadic
