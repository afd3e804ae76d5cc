package metrics

const Namespace = "praxis"
